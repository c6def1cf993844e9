package service

import (
	"context"
	"fmt"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// Dashboard wraps the /dashboard endpoints.
type Dashboard struct {
	client *api.Client
}

func NewDashboard(client *api.Client) *Dashboard {
	return &Dashboard{client: client}
}

func (s *Dashboard) Overview(ctx context.Context) (models.DashboardData, error) {
	var data models.DashboardData
	if err := s.client.Get(ctx, "/dashboard/", &data); err != nil {
		return models.DashboardData{}, err
	}
	return data, nil
}

func (s *Dashboard) ProductSummaries(ctx context.Context) ([]models.ProductSummary, error) {
	var summaries []models.ProductSummary
	if err := s.client.Get(ctx, "/dashboard/products/summary", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// TemperatureAnalytics returns recent readings for charting. With
// productID zero the backend aggregates across all owned products.
func (s *Dashboard) TemperatureAnalytics(ctx context.Context, productID, hours int) (models.TemperatureAnalytics, error) {
	path := fmt.Sprintf("/dashboard/analytics/temperature?hours=%d", hours)
	if productID > 0 {
		path += fmt.Sprintf("&product_id=%d", productID)
	}
	var data models.TemperatureAnalytics
	if err := s.client.Get(ctx, path, &data); err != nil {
		return models.TemperatureAnalytics{}, err
	}
	return data, nil
}

func (s *Dashboard) AlertAnalytics(ctx context.Context, days int) (models.AlertAnalytics, error) {
	var data models.AlertAnalytics
	if err := s.client.Get(ctx, fmt.Sprintf("/dashboard/analytics/alerts?days=%d", days), &data); err != nil {
		return models.AlertAnalytics{}, err
	}
	return data, nil
}
