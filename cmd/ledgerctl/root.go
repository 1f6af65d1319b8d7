package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/infra/dependency"
)

// cli carries what every subcommand needs to reach the store.
type cli struct {
	loadConfig func() *config.Config
}

func newRootCmd(loadConfig func() *config.Config) *cobra.Command {
	c := &cli{loadConfig: loadConfig}

	rootCmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Expense Ledger admin CLI",
		Long:          "Operate the expense ledger store: migrate the schema, seed defaults, allocate ids and print summaries.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		c.newMigrateCmd(),
		c.newSeedCmd(),
		c.newNextIDCmd(),
		c.newSummaryCmd(),
	)

	return rootCmd
}

// withResources opens the configured connections, runs fn and closes them.
func (c *cli) withResources(fn func(cfg *config.Config, res *dependency.Resources) error) error {
	cfg := c.loadConfig()

	res, err := dependency.Connect(cfg)
	if err != nil {
		return err
	}
	defer res.Close()

	return fn(cfg, res)
}

// withInjector is withResources plus the wired application.
func (c *cli) withInjector(ctx context.Context, fn func(ctx context.Context, inj *dependency.Injector) error) error {
	return c.withResources(func(cfg *config.Config, res *dependency.Resources) error {
		inj, err := res.Injector(cfg)
		if err != nil {
			return err
		}
		return fn(ctx, inj)
	})
}
