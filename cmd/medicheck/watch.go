package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"medicheck/cli/internal/watch"
)

func watchCmd(a *app) *cobra.Command {
	var schedule string
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll for new alerts and log them as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			if schedule == "" {
				schedule = a.cfg.Watch.Schedule
			}
			if !cmd.Flags().Changed("unread") {
				unreadOnly = a.cfg.Watch.UnreadOnly
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			poller := watch.NewPoller(a.alerts, unreadOnly, a.log)
			if err := poller.Start(ctx, schedule); err != nil {
				return fmt.Errorf("start poller: %w", err)
			}

			fmt.Printf("Watching for alerts (%s). Ctrl-C to stop.\n", schedule)
			<-ctx.Done()

			poller.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "six-field cron spec (default from config)")
	cmd.Flags().BoolVar(&unreadOnly, "unread", true, "only poll unread alerts")
	return cmd
}
