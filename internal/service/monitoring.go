package service

import (
	"context"
	"fmt"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// Monitoring wraps the /monitoring product and sensor-data endpoints.
type Monitoring struct {
	client *api.Client
}

func NewMonitoring(client *api.Client) *Monitoring {
	return &Monitoring{client: client}
}

func (s *Monitoring) CreateProduct(ctx context.Context, in models.ProductCreate) (models.Product, error) {
	var product models.Product
	if err := s.client.Post(ctx, "/monitoring/products", in, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *Monitoring) Products(ctx context.Context, skip, limit int) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/monitoring/products?skip=%d&limit=%d", skip, limit)
	if err := s.client.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Monitoring) Product(ctx context.Context, id int) (models.Product, error) {
	var product models.Product
	if err := s.client.Get(ctx, fmt.Sprintf("/monitoring/products/%d", id), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *Monitoring) SubmitSensorData(ctx context.Context, in models.SensorDataCreate) (models.SensorData, error) {
	var data models.SensorData
	if err := s.client.Post(ctx, "/monitoring/sensor-data", in, &data); err != nil {
		return models.SensorData{}, err
	}
	return data, nil
}

func (s *Monitoring) ProductSensorData(ctx context.Context, productID, limit int) ([]models.SensorData, error) {
	var data []models.SensorData
	path := fmt.Sprintf("/monitoring/products/%d/sensor-data?limit=%d", productID, limit)
	if err := s.client.Get(ctx, path, &data); err != nil {
		return nil, err
	}
	return data, nil
}
