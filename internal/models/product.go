package models

import "time"

type ProductStatus string

const (
	ProductStatusSafe    ProductStatus = "Safe & Verified"
	ProductStatusWarning ProductStatus = "Warning"
	ProductStatusAlert   ProductStatus = "Alert"
)

type Product struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	BatchNumber        string        `json:"batch_number"`
	ManufacturingDate  time.Time     `json:"manufacturing_date"`
	ExpiryDate         time.Time     `json:"expiry_date"`
	Location           string        `json:"location,omitempty"`
	CurrentTemperature *float64      `json:"current_temperature"`
	CurrentHumidity    *float64      `json:"current_humidity"`
	Status             ProductStatus `json:"status"`
	OwnerID            int           `json:"owner_id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          *time.Time    `json:"updated_at"`
}

type ProductCreate struct {
	Name              string    `json:"name"`
	BatchNumber       string    `json:"batch_number"`
	ManufacturingDate time.Time `json:"manufacturing_date"`
	ExpiryDate        time.Time `json:"expiry_date"`
	Location          string    `json:"location,omitempty"`
}

// ProductSummary is the reduced listing shape served by
// /dashboard/products/summary.
type ProductSummary struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	BatchNumber        string        `json:"batch_number"`
	Status             ProductStatus `json:"status"`
	CurrentTemperature *float64      `json:"current_temperature"`
	CurrentHumidity    *float64      `json:"current_humidity"`
	Location           string        `json:"location,omitempty"`
	ExpiryDate         time.Time     `json:"expiry_date"`
}

type SensorData struct {
	ID            int       `json:"id"`
	ProductID     int       `json:"product_id"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	LightExposure *float64  `json:"light_exposure"`
	Vibration     *float64  `json:"vibration"`
	Timestamp     time.Time `json:"timestamp"`
}

type SensorDataCreate struct {
	ProductID     int      `json:"product_id"`
	Temperature   float64  `json:"temperature"`
	Humidity      float64  `json:"humidity"`
	LightExposure *float64 `json:"light_exposure,omitempty"`
	Vibration     *float64 `json:"vibration,omitempty"`
}
