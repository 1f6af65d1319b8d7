package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/infra/dependency"
)

func (c *cli) newNextIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-id <entity>",
		Short: "Allocate and print the next id for an entity type",
		Long:  "Allocate one id from the configured sequence backend. The id is consumed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withInjector(cmd.Context(), func(ctx context.Context, inj *dependency.Injector) error {
				id, err := inj.Allocator.NextID(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
}
