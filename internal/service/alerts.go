package service

import (
	"context"
	"fmt"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// Alerts wraps the /alerts endpoints.
type Alerts struct {
	client *api.Client
}

func NewAlerts(client *api.Client) *Alerts {
	return &Alerts{client: client}
}

func (s *Alerts) List(ctx context.Context, unreadOnly bool, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	path := fmt.Sprintf("/alerts/?unread_only=%t&limit=%d", unreadOnly, limit)
	if err := s.client.Get(ctx, path, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *Alerts) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := s.client.Get(ctx, "/alerts/count", &resp); err != nil {
		return 0, err
	}
	return resp.UnreadCount, nil
}

func (s *Alerts) MarkRead(ctx context.Context, alertID int) (models.Alert, error) {
	var alert models.Alert
	if err := s.client.Put(ctx, fmt.Sprintf("/alerts/%d/mark-read", alertID), nil, &alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (s *Alerts) Create(ctx context.Context, in models.AlertCreate) (models.Alert, error) {
	var alert models.Alert
	if err := s.client.Post(ctx, "/alerts/", in, &alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}
