package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"medicheck/cli/internal/models"
)

func adminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (admin accounts only)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			// Role is re-checked server-side; this only improves the error.
			if user := a.sessions.Current().User; user != nil && !user.IsAdmin() {
				return fmt.Errorf("%s is not an admin account", user.Username)
			}
			return nil
		},
	}

	cmd.AddCommand(
		adminStatsCmd(a),
		adminUsersCmd(a),
		adminProductsCmd(a),
		adminSensorsCmd(a),
		adminModelsCmd(a),
		adminConfigCmd(a),
		adminAuditCmd(a),
	)
	return cmd
}

func adminProductsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List every monitored product across all owners",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.admin.Products(cmd.Context(), 0, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tOWNER\tNAME\tBATCH\tSTATUS\tEXPIRES")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
					p.ID, p.OwnerID, p.Name, p.BatchNumber, p.Status,
					p.ExpiryDate.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum rows")
	return cmd
}

func adminStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "System-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.admin.Stats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Users:    %d total, %d active\n", stats.Users.Total, stats.Users.Active)
			fmt.Printf("Products: %d total (%d safe, %d warning, %d alert)\n",
				stats.Products.Total, stats.Products.Safe, stats.Products.Warning, stats.Products.Alert)
			fmt.Printf("Alerts:   %d total, %d unread, %d critical\n",
				stats.Alerts.Total, stats.Alerts.Unread, stats.Alerts.Critical)
			fmt.Printf("Sensors:  %d total, %d active\n", stats.Sensors.Total, stats.Sensors.Active)
			return nil
		},
	}
}

func adminUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.admin.Users(cmd.Context(), 0, 100)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tACTIVE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.UserType, u.IsActive)
			}
			return w.Flush()
		},
	}

	activate := &cobra.Command{
		Use:   "activate <id>",
		Short: "Activate an account",
		Args:  cobra.ExactArgs(1),
		RunE:  setUserStatusRun(a, true),
	}
	deactivate := &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate an account",
		Args:  cobra.ExactArgs(1),
		RunE:  setUserStatusRun(a, false),
	}
	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.admin.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("User %d deleted.\n", id)
			return nil
		},
	}

	cmd.AddCommand(activate, deactivate, remove)
	return cmd
}

func setUserStatusRun(a *app, active bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.admin.SetUserStatus(cmd.Context(), id, active); err != nil {
			return err
		}
		state := "deactivated"
		if active {
			state = "activated"
		}
		fmt.Printf("User %d %s.\n", id, state)
		return nil
	}
}

func adminSensorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensors",
		Short: "Manage IoT sensors",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensors, err := a.admin.Sensors(cmd.Context(), 0, 100)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSENSOR\tTYPE\tLOCATION\tSTATUS\tLAST READING")
			for _, s := range sensors {
				last := "-"
				if s.LastReading != nil {
					last = s.LastReading.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.SensorID, s.SensorType, s.Location, s.Status, last)
			}
			return w.Flush()
		},
	}

	var sensorID, sensorType, location string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a sensor",
		RunE: func(cmd *cobra.Command, args []string) error {
			sensor, err := a.admin.CreateSensor(cmd.Context(), models.IoTSensorCreate{
				SensorID:   sensorID,
				SensorType: sensorType,
				Location:   location,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Sensor %d (%s) registered.\n", sensor.ID, sensor.SensorID)
			return nil
		},
	}
	add.Flags().StringVar(&sensorID, "sensor-id", "", "hardware sensor id")
	add.Flags().StringVar(&sensorType, "type", "", "sensor type")
	add.Flags().StringVar(&location, "location", "", "placement")
	_ = add.MarkFlagRequired("sensor-id")
	_ = add.MarkFlagRequired("type")

	calibrate := &cobra.Command{
		Use:   "calibrate <id>",
		Short: "Record a sensor calibration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.admin.CalibrateSensor(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Sensor %d calibrated.\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, calibrate)
	return cmd
}

func adminModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List registered AI models",
		RunE: func(cmd *cobra.Command, args []string) error {
			aiModels, err := a.admin.AIModels(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tVERSION\tSTATUS\tACCURACY")
			for _, m := range aiModels {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, m.ModelName, m.ModelType, m.Version, m.Status, formatReading(m.Accuracy, ""))
			}
			return w.Flush()
		},
	}
}

func adminConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "System configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := a.admin.Configs(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE\tDESCRIPTION")
			for _, c := range configs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ConfigKey, c.ConfigValue, c.Description)
			}
			return w.Flush()
		},
	}

	var description string
	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Create or update a configuration entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.admin.SetConfig(cmd.Context(), models.SystemConfigCreate{
				ConfigKey:   args[0],
				ConfigValue: args[1],
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", cfg.ConfigKey, cfg.ConfigValue)
			return nil
		},
	}
	set.Flags().StringVar(&description, "description", "", "what this key controls")

	cmd.AddCommand(set)
	return cmd
}

func adminAuditCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent audit log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := a.admin.AuditLogs(cmd.Context(), 0, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tUSER\tACTION\tTABLE")
			for _, entry := range logs {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
					entry.Timestamp.Format(time.RFC3339), entry.UserID, entry.Action, entry.TableName)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")
	return cmd
}
