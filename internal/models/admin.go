package models

import "time"

type SensorStatus string

const (
	SensorStatusActive      SensorStatus = "active"
	SensorStatusInactive    SensorStatus = "inactive"
	SensorStatusMaintenance SensorStatus = "maintenance"
)

type IoTSensor struct {
	ID              int          `json:"id"`
	SensorID        string       `json:"sensor_id"`
	SensorType      string       `json:"sensor_type"`
	Location        string       `json:"location,omitempty"`
	ProductID       *int         `json:"product_id"`
	Status          SensorStatus `json:"status"`
	LastReading     *time.Time   `json:"last_reading"`
	CalibrationDate *time.Time   `json:"calibration_date"`
	CreatedAt       time.Time    `json:"created_at"`
}

type IoTSensorCreate struct {
	SensorID   string `json:"sensor_id"`
	SensorType string `json:"sensor_type"`
	Location   string `json:"location,omitempty"`
	ProductID  *int   `json:"product_id,omitempty"`
}

type AIModel struct {
	ID                int        `json:"id"`
	ModelName         string     `json:"model_name"`
	ModelType         string     `json:"model_type"`
	Version           string     `json:"version"`
	Accuracy          *float64   `json:"accuracy"`
	Status            string     `json:"status"`
	TrainingDataCount int        `json:"training_data_count"`
	LastTrained       *time.Time `json:"last_trained"`
	CreatedAt         time.Time  `json:"created_at"`
}

type SystemConfig struct {
	ID          int        `json:"id"`
	ConfigKey   string     `json:"config_key"`
	ConfigValue string     `json:"config_value"`
	Description string     `json:"description,omitempty"`
	UpdatedBy   *int       `json:"updated_by"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type SystemConfigCreate struct {
	ConfigKey   string `json:"config_key"`
	ConfigValue string `json:"config_value"`
	Description string `json:"description,omitempty"`
}

type AuditLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name,omitempty"`
	RecordID  *int      `json:"record_id"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminStats mirrors GET /admin/dashboard/stats.
type AdminStats struct {
	Users struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
	} `json:"users"`
	Products struct {
		Total   int `json:"total"`
		Safe    int `json:"safe"`
		Warning int `json:"warning"`
		Alert   int `json:"alert"`
	} `json:"products"`
	Alerts struct {
		Total    int `json:"total"`
		Unread   int `json:"unread"`
		Critical int `json:"critical"`
	} `json:"alerts"`
	Sensors struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"sensors"`
}
