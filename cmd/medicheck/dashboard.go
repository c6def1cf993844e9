package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func dashboardCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the cold-chain overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			data, err := a.dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Products: %d total  (%d safe, %d warning, %d alert)\n",
				data.TotalProducts, data.SafeProducts, data.WarningProducts, data.AlertProducts)
			fmt.Printf("Unread alerts: %d\n", data.UnreadAlerts)

			if len(data.RecentAlerts) > 0 {
				fmt.Println("\nRecent alerts:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "  ID\tSEVERITY\tTYPE\tMESSAGE")
				for _, alert := range data.RecentAlerts {
					fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", alert.ID, alert.Severity, alert.AlertType, alert.Message)
				}
				w.Flush()
			}

			analytics, err := a.dashboard.AlertAnalytics(cmd.Context(), days)
			if err != nil {
				// The overview already rendered; analytics are additive.
				a.log.Warn().Err(err).Msg("alert analytics unavailable")
				return nil
			}
			fmt.Printf("\nAlerts last %d days: %d", analytics.PeriodDays, analytics.TotalAlerts)
			for severity, count := range analytics.SeverityDistribution {
				if count > 0 {
					fmt.Printf("  %s=%d", severity, count)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "alert analytics window in days")
	return cmd
}
