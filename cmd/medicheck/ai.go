package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"medicheck/cli/internal/models"
)

func aiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "AI quality, anomaly and counterfeit analysis",
	}

	cmd.AddCommand(
		aiQualityCmd(a),
		aiTimelineCmd(a),
		aiAnomalyCmd(a),
		aiLabelCmd(a),
		aiPackagingCmd(a),
		aiAnalyzeCmd(a),
		aiStatusCmd(a),
	)
	return cmd
}

func aiAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <product id>",
		Short: "Run every model against a product's latest reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			analysis, err := a.ai.SmartAnalysis(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (batch %s): %s\n", analysis.ProductName, analysis.BatchNumber, analysis.OverallStatus)
			fmt.Printf("Quality:    %.1f (%s, %s risk)\n",
				analysis.QualityAnalysis.Score, analysis.QualityAnalysis.Status, analysis.QualityAnalysis.Risk)
			if analysis.AnomalyDetection.IsAnomalous {
				fmt.Printf("Anomaly:    %s severity (score %.2f)\n",
					analysis.AnomalyDetection.Severity, analysis.AnomalyDetection.Score)
			} else {
				fmt.Println("Anomaly:    none detected")
			}
			fmt.Printf("Conditions: %.1f°C, %.1f%% humidity\n",
				analysis.CurrentConditions.Temperature, analysis.CurrentConditions.Humidity)
			for _, rec := range analysis.Recommendations {
				fmt.Printf("  %s\n", rec)
			}
			if analysis.PredictiveWarning != nil {
				fmt.Printf("Warning: %s\n", *analysis.PredictiveWarning)
			}
			return nil
		},
	}
}

func aiQualityCmd(a *app) *cobra.Command {
	var productID int
	var temperature, humidity float64

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Predict medicine quality from storage conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			prediction, err := a.ai.PredictQuality(cmd.Context(), models.QualityPredictionRequest{
				ProductID:   productID,
				Temperature: temperature,
				Humidity:    humidity,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Quality score:    %.1f (%s)\n", prediction.QualityScore, prediction.QualityStatus)
			fmt.Printf("Degradation risk: %s\n", prediction.DegradationRisk)
			fmt.Printf("Recommendation:   %s\n", prediction.Recommendation)
			return nil
		},
	}

	cmd.Flags().IntVar(&productID, "product", 0, "product id")
	cmd.Flags().Float64Var(&temperature, "temp", 0, "temperature °C")
	cmd.Flags().Float64Var(&humidity, "humidity", 0, "relative humidity %")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("humidity")
	return cmd
}

func aiTimelineCmd(a *app) *cobra.Command {
	var productID, days int
	var temperature, humidity float64

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Predict quality degradation over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			timeline, err := a.ai.PredictDegradationTimeline(cmd.Context(), models.QualityPredictionRequest{
				ProductID:   productID,
				Temperature: temperature,
				Humidity:    humidity,
			}, days)
			if err != nil {
				return err
			}

			for _, point := range timeline.PredictionTimeline {
				fmt.Printf("day %3d: %.1f (%s)\n", point.DaysFromNow, point.PredictedQuality, point.PredictedStatus)
			}
			if timeline.Warning != "" {
				fmt.Printf("Warning: %s\n", timeline.Warning)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&productID, "product", 0, "product id")
	cmd.Flags().IntVar(&days, "days", 30, "days ahead")
	cmd.Flags().Float64Var(&temperature, "temp", 0, "temperature °C")
	cmd.Flags().Float64Var(&humidity, "humidity", 0, "relative humidity %")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("humidity")
	return cmd
}

func aiAnomalyCmd(a *app) *cobra.Command {
	var temperature, humidity float64

	cmd := &cobra.Command{
		Use:   "anomaly",
		Short: "Check sensor readings for anomalies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			result, err := a.ai.DetectAnomaly(cmd.Context(), models.AnomalyDetectionRequest{
				Temperature: temperature,
				Humidity:    humidity,
			})
			if err != nil {
				return err
			}

			if result.IsAnomaly {
				fmt.Printf("ANOMALY (%s severity)\n", result.Severity)
			} else {
				fmt.Println("Readings look normal.")
			}
			if result.Message != "" {
				fmt.Println(result.Message)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&temperature, "temp", 0, "temperature °C")
	cmd.Flags().Float64Var(&humidity, "humidity", 0, "relative humidity %")
	_ = cmd.MarkFlagRequired("temp")
	_ = cmd.MarkFlagRequired("humidity")
	return cmd
}

func aiLabelCmd(a *app) *cobra.Command {
	var batch string

	cmd := &cobra.Command{
		Use:   "label <label text>",
		Short: "Validate a medicine label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			result, err := a.ai.ValidateLabel(cmd.Context(), models.LabelValidationRequest{
				LabelText:   strings.Join(args, " "),
				BatchNumber: batch,
			})
			if err != nil {
				return err
			}

			if result.IsValid {
				fmt.Println("Label is valid.")
			} else {
				fmt.Println("Label has problems:")
				for _, field := range result.MissingFields {
					fmt.Printf("  missing: %s\n", field)
				}
				for _, issue := range result.Issues {
					fmt.Printf("  %s\n", issue)
				}
			}
			if check := result.AuthenticityCheck; check != nil {
				if check.IsAuthentic {
					fmt.Printf("Batch check: authentic (%.0f%% confidence)\n", check.Confidence)
				} else {
					fmt.Printf("Batch check: NOT RECOGNIZED (%.0f%% confidence)\n", check.Confidence)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&batch, "batch", "", "batch number to verify")
	return cmd
}

func aiPackagingCmd(a *app) *cobra.Command {
	var productName string

	cmd := &cobra.Command{
		Use:   "packaging <image file>",
		Short: "Analyze a packaging photo for counterfeits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer file.Close()

			result, err := a.ai.AnalyzePackaging(cmd.Context(), args[0], file, productName)
			if err != nil {
				return err
			}

			if result.IsSuspicious {
				fmt.Printf("SUSPICIOUS packaging (%.0f%% confidence)\n", result.Confidence)
				if result.ReportID != nil {
					fmt.Printf("Counterfeit report filed: #%d\n", *result.ReportID)
				}
			} else {
				fmt.Printf("Packaging looks genuine (%.0f%% confidence)\n", result.Confidence)
			}
			for _, finding := range result.Findings {
				fmt.Printf("  %s\n", finding)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&productName, "product-name", "", "product name for batch matching")
	return cmd
}

func aiStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend AI model status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			statuses, err := a.ai.ModelStatus(cmd.Context())
			if err != nil {
				return err
			}
			for _, status := range statuses {
				fmt.Printf("%-35s %-12s %s\n", status.Name, status.Status, status.Description)
			}
			return nil
		},
	}
}
