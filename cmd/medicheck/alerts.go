package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func alertsCmd(a *app) *cobra.Command {
	var unread bool
	var limit int

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List cold-chain alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			alerts, err := a.alerts.List(cmd.Context(), unread, limit)
			if err != nil {
				return err
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tSEVERITY\tTYPE\tREAD\tMESSAGE")
			for _, alert := range alerts {
				read := ""
				if alert.IsRead {
					read = "✓"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					alert.ID, alert.CreatedAt.Format(time.RFC3339),
					alert.Severity, alert.AlertType, read, alert.Message)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&unread, "unread", false, "only unread alerts")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")

	cmd.AddCommand(alertsReadCmd(a), alertsCountCmd(a))
	return cmd
}

func alertsReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark an alert as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			alert, err := a.alerts.MarkRead(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Alert %d marked read.\n", alert.ID)
			return nil
		},
	}
}

func alertsCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the unread alert count",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			count, err := a.alerts.UnreadCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}
}
