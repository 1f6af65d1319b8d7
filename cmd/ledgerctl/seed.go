package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/application/usecase/seed"
	"github.com/expense-ledger/backend/internal/infra/dependency"
)

func (c *cli) newSeedCmd() *cobra.Command {
	var demoPassword string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default categories and the demo user on an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withInjector(cmd.Context(), func(ctx context.Context, inj *dependency.Injector) error {
				password := demoPassword
				if !cmd.Flags().Changed("demo-password") {
					password = inj.Config.Seed.DemoPassword
				}

				output, err := inj.SeedDefaults.Execute(ctx, seed.SeedDefaultsInput{DemoPassword: password})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "categories created: %d\n", output.CategoriesCreated)
				fmt.Fprintf(cmd.OutOrStdout(), "demo user created: %t\n", output.DemoUserCreated)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&demoPassword, "demo-password", "", "Password for the demo user (defaults to SEED_DEMO_PASSWORD)")
	return cmd
}
