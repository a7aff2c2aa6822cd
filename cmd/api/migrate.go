package main

import (
	"github.com/spf13/cobra"

	"zoo-rooms/internal/router"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations for the configured store",
		Long: `Applies the embedded SQL migrations (postgres, sqlite) or creates the
DynamoDB tables and indexes if missing. The in-memory store has nothing to migrate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return router.Migrate(cmd.Context(), cfg, log)
		},
	}
}
