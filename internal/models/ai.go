package models

// Request and response shapes for the /ai prediction endpoints. The
// backend returns loosely structured JSON for some of these; fields
// not modelled here are dropped on decode.

type QualityPredictionRequest struct {
	ProductID                int      `json:"product_id"`
	Temperature              float64  `json:"temperature"`
	Humidity                 float64  `json:"humidity"`
	PHLevel                  *float64 `json:"ph_level,omitempty"`
	MoistureContent          *float64 `json:"moisture_content,omitempty"`
	DaysSinceManufacturing   *int     `json:"days_since_manufacturing,omitempty"`
	ImpurityPercentage       *float64 `json:"impurity_percentage,omitempty"`
	ActiveIngredientConcentr *float64 `json:"active_ingredient_concentration,omitempty"`
}

type QualityPrediction struct {
	QualityScore    float64            `json:"quality_score"`
	QualityStatus   string             `json:"quality_status"`
	Confidence      map[string]float64 `json:"confidence"`
	DegradationRisk string             `json:"degradation_risk"`
	Recommendation  string             `json:"recommendation"`
}

type DegradationPoint struct {
	DaysFromNow      int     `json:"days_from_now"`
	PredictedQuality float64 `json:"predicted_quality"`
	PredictedStatus  string  `json:"predicted_status"`
}

type DegradationTimeline struct {
	ProductID          int                `json:"product_id"`
	PredictionTimeline []DegradationPoint `json:"prediction_timeline"`
	Warning            string             `json:"warning,omitempty"`
}

type AnomalyDetectionRequest struct {
	Temperature   float64  `json:"temperature"`
	Humidity      float64  `json:"humidity"`
	LightExposure *float64 `json:"light_exposure,omitempty"`
	Vibration     *float64 `json:"vibration,omitempty"`
}

type AnomalyResult struct {
	IsAnomaly bool    `json:"is_anomaly"`
	Severity  string  `json:"severity"`
	Score     float64 `json:"anomaly_score"`
	Message   string  `json:"message,omitempty"`
}

type LabelValidationRequest struct {
	LabelText   string `json:"label_text"`
	BatchNumber string `json:"batch_number,omitempty"`
}

type LabelValidation struct {
	IsValid           bool     `json:"is_valid"`
	MissingFields     []string `json:"missing_fields,omitempty"`
	Issues            []string `json:"issues,omitempty"`
	AuthenticityCheck *struct {
		IsAuthentic bool    `json:"is_authentic"`
		Confidence  float64 `json:"confidence"`
	} `json:"authenticity_check,omitempty"`
}

type PackagingAnalysis struct {
	IsSuspicious bool    `json:"is_suspicious"`
	Confidence   float64 `json:"confidence"`
	Findings     []string `json:"findings,omitempty"`
	ReportID     *int    `json:"report_id,omitempty"`
}

// SmartAnalysis is the combined assessment from POST /ai/smart-analysis:
// every model run against a product's latest sensor reading. Timestamps
// arrive as bare ISO strings without an offset, so they stay strings.
type SmartAnalysis struct {
	ProductID         int    `json:"product_id"`
	ProductName       string `json:"product_name"`
	BatchNumber       string `json:"batch_number"`
	OverallStatus     string `json:"overall_status"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
	QualityAnalysis   struct {
		Score      float64            `json:"score"`
		Status     string             `json:"status"`
		Confidence map[string]float64 `json:"confidence"`
		Risk       string             `json:"risk"`
	} `json:"quality_analysis"`
	AnomalyDetection struct {
		IsAnomalous bool    `json:"is_anomalous"`
		Severity    string  `json:"severity"`
		Score       float64 `json:"anomaly_score"`
	} `json:"anomaly_detection"`
	CurrentConditions struct {
		Temperature float64 `json:"temperature"`
		Humidity    float64 `json:"humidity"`
		Timestamp   string  `json:"timestamp"`
	} `json:"current_conditions"`
	Recommendations     []string           `json:"recommendations"`
	PredictiveWarning   *string            `json:"predictive_warning"`
	DegradationTimeline []DegradationPoint `json:"degradation_timeline"`
}

type ModelStatus struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Model    string        `json:"model,omitempty"`
}
