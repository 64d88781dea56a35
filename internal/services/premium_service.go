package services

import (
	"context"
	"time"

	"premiumcalc/internal/model"
	"premiumcalc/internal/models/request_models"
	"premiumcalc/internal/models/response_models"
	"premiumcalc/pkg/metrics"
	"premiumcalc/pkg/utils"
)

// PremiumModel is the loaded regression model.
type PremiumModel interface {
	Predict(features []float64) (float64, error)
	FeatureNames() []string
	Info() model.Info
}

// PremiumPredictor turns a request into a premium, locally or over HTTP.
type PremiumPredictor interface {
	Predict(ctx context.Context, req request_models.PremiumRequest) (float64, error)
}

type PremiumServiceInterface interface {
	PremiumPredictor
	ModelInfo() response_models.ModelInfoResponse
}

type PremiumService struct {
	model PremiumModel
	order []string
}

func NewPremiumService(m PremiumModel) PremiumServiceInterface {
	return &PremiumService{
		model: m,
		order: m.FeatureNames(),
	}
}

// Predict validates the request and returns the premium rounded to cents.
// The model is not called for an invalid request.
func (s *PremiumService) Predict(ctx context.Context, req request_models.PremiumRequest) (float64, error) {
	if err := req.Validate(); err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return 0, err
	}

	vec, err := req.FeatureVector(s.order)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return 0, err
	}

	start := time.Now()
	premium, err := s.model.Predict(vec)
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return 0, err
	}

	metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return utils.RoundPremium(premium), nil
}

func (s *PremiumService) ModelInfo() response_models.ModelInfoResponse {
	info := s.model.Info()
	return response_models.ModelInfoResponse{
		Name:         info.Name,
		Version:      info.Version,
		Kind:         info.Kind,
		Target:       info.Target,
		FeatureNames: info.FeatureNames,
	}
}
