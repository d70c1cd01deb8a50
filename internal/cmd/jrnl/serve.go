package jrnlcmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tasleson/sdjournal/internal/config"
	"github.com/tasleson/sdjournal/internal/gateway"
	"github.com/tasleson/sdjournal/pkg/log"
)

func newServeCommand(cfg *config.Config, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve journal reads over HTTP (entries, follow via SSE, fields, status)",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("http")
			if addr == "" {
				addr = cfg.HTTPAddr
			}

			open := func() (gateway.Journal, error) {
				j, err := openJournal(*cfg)
				if err != nil {
					return nil, err
				}
				return j, nil
			}
			srv := gateway.New(gateway.Options{
				Open:         open,
				DefaultLimit: cfg.DefaultLimit,
				PollInterval: time.Duration(cfg.PollIntervalMs) * time.Millisecond,
				Logger:       logger,
			})
			defer srv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("http", "", "HTTP listen address (default from config)")
	return cmd
}
