package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langportal-backend/migrations"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return postgres.Migrate(cmd.Context(), e.logger, e.cfg.Database.DSN, migrations.FS)
		},
	}
}
