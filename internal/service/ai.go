package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// AI wraps the /ai prediction endpoints. All model inference runs on
// the backend; this layer only shapes requests and decodes results.
type AI struct {
	client *api.Client
}

func NewAI(client *api.Client) *AI {
	return &AI{client: client}
}

func (s *AI) PredictQuality(ctx context.Context, req models.QualityPredictionRequest) (models.QualityPrediction, error) {
	var prediction models.QualityPrediction
	if err := s.client.Post(ctx, "/ai/predict-quality", req, &prediction); err != nil {
		return models.QualityPrediction{}, err
	}
	return prediction, nil
}

func (s *AI) PredictDegradationTimeline(ctx context.Context, req models.QualityPredictionRequest, daysAhead int) (models.DegradationTimeline, error) {
	var timeline models.DegradationTimeline
	path := fmt.Sprintf("/ai/predict-degradation-timeline?days_ahead=%d", daysAhead)
	if err := s.client.Post(ctx, path, req, &timeline); err != nil {
		return models.DegradationTimeline{}, err
	}
	return timeline, nil
}

func (s *AI) DetectAnomaly(ctx context.Context, req models.AnomalyDetectionRequest) (models.AnomalyResult, error) {
	var result models.AnomalyResult
	if err := s.client.Post(ctx, "/ai/detect-anomaly", req, &result); err != nil {
		return models.AnomalyResult{}, err
	}
	return result, nil
}

func (s *AI) ValidateLabel(ctx context.Context, req models.LabelValidationRequest) (models.LabelValidation, error) {
	var result models.LabelValidation
	if err := s.client.Post(ctx, "/ai/validate-label", req, &result); err != nil {
		return models.LabelValidation{}, err
	}
	return result, nil
}

// AnalyzePackaging uploads a packaging image for counterfeit analysis.
// The file goes up as multipart form data; the multipart writer owns
// the content type so the boundary survives.
func (s *AI) AnalyzePackaging(ctx context.Context, filename string, file io.Reader, productName string) (models.PackagingAnalysis, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return models.PackagingAnalysis{}, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.PackagingAnalysis{}, fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return models.PackagingAnalysis{}, fmt.Errorf("finish upload: %w", err)
	}

	path := "/ai/analyze-packaging"
	if productName != "" {
		path += "?product_name=" + url.QueryEscape(productName)
	}

	var result models.PackagingAnalysis
	if err := s.client.PostMultipart(ctx, path, &buf, writer.FormDataContentType(), &result); err != nil {
		return models.PackagingAnalysis{}, err
	}
	return result, nil
}

// SmartAnalysis runs every model against the product's latest sensor
// reading and returns the combined assessment.
func (s *AI) SmartAnalysis(ctx context.Context, productID int) (models.SmartAnalysis, error) {
	var analysis models.SmartAnalysis
	path := fmt.Sprintf("/ai/smart-analysis?product_id=%d", productID)
	if err := s.client.Post(ctx, path, nil, &analysis); err != nil {
		return models.SmartAnalysis{}, err
	}
	return analysis, nil
}

func (s *AI) ModelStatus(ctx context.Context) ([]models.ModelStatus, error) {
	var resp struct {
		Models []models.ModelStatus `json:"models"`
	}
	if err := s.client.Get(ctx, "/ai/model-status", &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}
