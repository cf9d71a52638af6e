package cmd

import (
	"context"
	"github.com/codesync/autocomplete-server/http_server"
	"github.com/codesync/autocomplete-server/llm"
	"github.com/codesync/autocomplete-server/service"
	"github.com/spf13/cobra"
	"os/signal"
	"syscall"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port != "" {
			cfg.Port = port
		}

		gen, err := llm.New(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return http_server.HandleRequests(ctx, cfg, service.New(gen))
	},
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides HTTP_SERVER_PORT)")
}
