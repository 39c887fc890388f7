package main

import (
	"github.com/VladPetriv/listings_api/internal/app"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Migrate the configured store, check the default image and serve the API until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.Run(cmd.Context(), cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("run app")
				return err
			}

			return nil
		},
	}
}
