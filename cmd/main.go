package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/listings_api/config"
	"github.com/VladPetriv/listings_api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger

	rootCmd = &cobra.Command{
		Use:               "listings",
		Short:             "Marketplace listings API",
		Long:              `listings serves marketplace items and their images over HTTP.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or env); environment only when empty")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(healthcheckCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, err = logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	return nil
}
