package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"resty.dev/v3"
)

func healthcheckCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that a running API answers on its root route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = localURL(cfg.Server.Address)
			}

			client := resty.New().SetTimeout(timeout)

			resp, err := client.R().SetContext(cmd.Context()).Get(url)
			if err != nil {
				return fmt.Errorf("send healthcheck request: %w", err)
			}
			if resp.StatusCode() != http.StatusOK {
				return fmt.Errorf("unexpected healthcheck status %d: %s", resp.StatusCode(), resp.String())
			}

			log.Info().Str("url", url).Msg("api is healthy")
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "root URL of the API (default: derived from SERVER_ADDRESS)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	return cmd
}

// localURL turns a listen address such as ":9000" into a URL on localhost.
func localURL(address string) string {
	if strings.HasPrefix(address, ":") {
		address = "localhost" + address
	}

	return "http://" + address + "/"
}
