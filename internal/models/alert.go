package models

import "time"

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

type Alert struct {
	ID        int           `json:"id"`
	UserID    int           `json:"user_id"`
	ProductID int           `json:"product_id"`
	AlertType string        `json:"alert_type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	IsRead    bool          `json:"is_read"`
	CreatedAt time.Time     `json:"created_at"`
}

type AlertCreate struct {
	ProductID int           `json:"product_id"`
	AlertType string        `json:"alert_type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
}

// DashboardData is the aggregate served by GET /dashboard/.
type DashboardData struct {
	TotalProducts    int          `json:"total_products"`
	SafeProducts     int          `json:"safe_products"`
	WarningProducts  int          `json:"warning_products"`
	AlertProducts    int          `json:"alert_products"`
	UnreadAlerts     int          `json:"unread_alerts"`
	RecentAlerts     []Alert      `json:"recent_alerts"`
	RecentSensorData []SensorData `json:"recent_sensor_data"`
}

type TemperaturePoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	ProductID   int       `json:"product_id"`
}

type TemperatureAnalytics struct {
	TemperatureData []TemperaturePoint `json:"temperature_data"`
}

type AlertAnalytics struct {
	TotalAlerts          int            `json:"total_alerts"`
	AlertTypes           map[string]int `json:"alert_types"`
	SeverityDistribution map[string]int `json:"severity_distribution"`
	PeriodDays           int            `json:"period_days"`
}
