package main

import (
	"github.com/VladPetriv/listings_api/internal/app"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Migrate(cmd.Context(), cfg, log)
		},
	}
}
