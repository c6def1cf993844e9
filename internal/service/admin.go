package service

import (
	"context"
	"fmt"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// Admin wraps the /admin endpoints. The backend enforces the admin
// account class; this layer just carries the calls.
type Admin struct {
	client *api.Client
}

func NewAdmin(client *api.Client) *Admin {
	return &Admin{client: client}
}

func (s *Admin) Users(ctx context.Context, skip, limit int) ([]models.User, error) {
	var users []models.User
	path := fmt.Sprintf("/admin/users/?skip=%d&limit=%d", skip, limit)
	if err := s.client.Get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Admin) SetUserStatus(ctx context.Context, userID int, active bool) error {
	path := fmt.Sprintf("/admin/users/%d/status?is_active=%t", userID, active)
	return s.client.Put(ctx, path, nil, nil)
}

func (s *Admin) DeleteUser(ctx context.Context, userID int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/users/%d", userID), nil)
}

// Products lists every monitored product across all owners, unlike the
// monitoring listing which is scoped to the caller's own products.
func (s *Admin) Products(ctx context.Context, skip, limit int) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/admin/products/?skip=%d&limit=%d", skip, limit)
	if err := s.client.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Admin) Stats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	if err := s.client.Get(ctx, "/admin/dashboard/stats", &stats); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}

func (s *Admin) Sensors(ctx context.Context, skip, limit int) ([]models.IoTSensor, error) {
	var sensors []models.IoTSensor
	path := fmt.Sprintf("/admin/sensors/?skip=%d&limit=%d", skip, limit)
	if err := s.client.Get(ctx, path, &sensors); err != nil {
		return nil, err
	}
	return sensors, nil
}

func (s *Admin) CreateSensor(ctx context.Context, in models.IoTSensorCreate) (models.IoTSensor, error) {
	var sensor models.IoTSensor
	if err := s.client.Post(ctx, "/admin/sensors/", in, &sensor); err != nil {
		return models.IoTSensor{}, err
	}
	return sensor, nil
}

func (s *Admin) SetSensorStatus(ctx context.Context, sensorID int, status models.SensorStatus) error {
	path := fmt.Sprintf("/admin/sensors/%d/status?status=%s", sensorID, status)
	return s.client.Put(ctx, path, nil, nil)
}

func (s *Admin) CalibrateSensor(ctx context.Context, sensorID int) error {
	return s.client.Put(ctx, fmt.Sprintf("/admin/sensors/%d/calibrate", sensorID), nil, nil)
}

func (s *Admin) DeleteSensor(ctx context.Context, sensorID int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/sensors/%d", sensorID), nil)
}

func (s *Admin) AIModels(ctx context.Context) ([]models.AIModel, error) {
	var aiModels []models.AIModel
	if err := s.client.Get(ctx, "/admin/ai-models/", &aiModels); err != nil {
		return nil, err
	}
	return aiModels, nil
}

func (s *Admin) Configs(ctx context.Context) ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	if err := s.client.Get(ctx, "/admin/system/config", &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *Admin) SetConfig(ctx context.Context, in models.SystemConfigCreate) (models.SystemConfig, error) {
	var cfg models.SystemConfig
	if err := s.client.Post(ctx, "/admin/system/config", in, &cfg); err != nil {
		return models.SystemConfig{}, err
	}
	return cfg, nil
}

func (s *Admin) AuditLogs(ctx context.Context, skip, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	path := fmt.Sprintf("/admin/system/audit-logs?skip=%d&limit=%d", skip, limit)
	if err := s.client.Get(ctx, path, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
