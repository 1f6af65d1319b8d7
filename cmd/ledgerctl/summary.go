package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/internal/application/usecase/summary"
	"github.com/expense-ledger/backend/internal/infra/dependency"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

func (c *cli) newSummaryCmd() *cobra.Command {
	var (
		userID int64
		month  string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a user's monthly summary as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withInjector(cmd.Context(), func(ctx context.Context, inj *dependency.Injector) error {
				output, err := inj.GetMonthlySummary.Execute(ctx, summary.GetMonthlySummaryInput{
					UserID: userID,
					Month:  month,
				})
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToMonthlySummaryResponse(output.Summary))
			})
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (defaults to the current month)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
