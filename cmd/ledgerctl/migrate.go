package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/infra/dependency"
)

func (c *cli) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ledger tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withResources(func(_ *config.Config, res *dependency.Resources) error {
				if err := res.Database.Migrate(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
}
