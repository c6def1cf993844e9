package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"medicheck/cli/internal/gateway"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard to a local browser",
		Long: `Runs a local HTTP gateway that exposes the session state and the
authenticated dashboard data as JSON under /api. A browser frontend
can poll /api/session and wait for restoration to settle before
rendering anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := gateway.NewServer(a.cfg, a.sessions, gateway.Services{
				Dashboard: a.dashboard,
				Alerts:    a.alerts,
				Admin:     a.admin,
			}, a.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			fmt.Printf("Gateway on http://%s:%d\n", a.cfg.Gateway.Host, a.cfg.Gateway.Port)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
