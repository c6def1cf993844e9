package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"medicheck/cli/internal/models"
)

func productsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Monitored products",
	}

	cmd.AddCommand(productsListCmd(a), productsShowCmd(a), productsAddCmd(a), productsReadingsCmd(a))
	return cmd
}

func productsListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List monitored products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			summaries, err := a.dashboard.ProductSummaries(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) > limit {
				summaries = summaries[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBATCH\tSTATUS\tTEMP\tHUMIDITY\tEXPIRES")
			for _, p := range summaries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.BatchNumber, p.Status,
					formatReading(p.CurrentTemperature, "°C"),
					formatReading(p.CurrentHumidity, "%"),
					p.ExpiryDate.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum rows")
	return cmd
}

func productsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.monitoring.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (batch %s)\n", p.Name, p.BatchNumber)
			fmt.Printf("Status:       %s\n", p.Status)
			fmt.Printf("Location:     %s\n", p.Location)
			fmt.Printf("Temperature:  %s\n", formatReading(p.CurrentTemperature, "°C"))
			fmt.Printf("Humidity:     %s\n", formatReading(p.CurrentHumidity, "%"))
			fmt.Printf("Manufactured: %s\n", p.ManufacturingDate.Format("2006-01-02"))
			fmt.Printf("Expires:      %s\n", p.ExpiryDate.Format("2006-01-02"))
			return nil
		},
	}
}

func productsAddCmd(a *app) *cobra.Command {
	var name, batch, location, manufactured, expires string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a product for monitoring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			mfd, err := time.Parse("2006-01-02", manufactured)
			if err != nil {
				return fmt.Errorf("parse --manufactured: %w", err)
			}
			exp, err := time.Parse("2006-01-02", expires)
			if err != nil {
				return fmt.Errorf("parse --expires: %w", err)
			}

			p, err := a.monitoring.CreateProduct(cmd.Context(), models.ProductCreate{
				Name:              name,
				BatchNumber:       batch,
				ManufacturingDate: mfd,
				ExpiryDate:        exp,
				Location:          location,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created product %d (%s, batch %s)\n", p.ID, p.Name, p.BatchNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&batch, "batch", "", "batch number")
	cmd.Flags().StringVar(&location, "location", "", "storage location")
	cmd.Flags().StringVar(&manufactured, "manufactured", "", "manufacturing date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&expires, "expires", "", "expiry date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("batch")
	_ = cmd.MarkFlagRequired("manufactured")
	_ = cmd.MarkFlagRequired("expires")
	return cmd
}

func productsReadingsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "readings <id>",
		Short: "Show recent sensor readings for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			readings, err := a.monitoring.ProductSensorData(cmd.Context(), id, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tTEMP\tHUMIDITY\tLIGHT\tVIBRATION")
			for _, r := range readings {
				fmt.Fprintf(w, "%s\t%.1f°C\t%.1f%%\t%s\t%s\n",
					r.Timestamp.Format(time.RFC3339),
					r.Temperature, r.Humidity,
					formatReading(r.LightExposure, ""),
					formatReading(r.Vibration, ""))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows")
	return cmd
}

func formatReading(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}

func parseID(raw string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(raw, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
