package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"premiumcalc/internal/models/db_models"
	"premiumcalc/internal/models/request_models"
)

const defaultRecordTimeout = 10 * time.Second

// IntakeResult is a prediction plus the outcome of recording it.
type IntakeResult struct {
	Premium   float64
	Record    db_models.PremiumRecord
	RecordErr error
}

type IntakeServiceInterface interface {
	Submit(ctx context.Context, req request_models.PremiumRequest) (float64, error)
	Estimate(ctx context.Context, req request_models.PremiumRequest) (IntakeResult, error)
}

type IntakeService struct {
	predictor     PremiumPredictor
	sink          RecordSink
	recordTimeout time.Duration
	logger        *zap.Logger
}

// NewIntakeService wires a predictor to a sink. A nil sink disables recording.
func NewIntakeService(predictor PremiumPredictor, sink RecordSink, recordTimeout time.Duration, logger *zap.Logger) IntakeServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recordTimeout <= 0 {
		recordTimeout = defaultRecordTimeout
	}
	return &IntakeService{
		predictor:     predictor,
		sink:          sink,
		recordTimeout: recordTimeout,
		logger:        logger,
	}
}

// Submit predicts and records best-effort; a recording failure never
// changes the returned premium.
func (s *IntakeService) Submit(ctx context.Context, req request_models.PremiumRequest) (float64, error) {
	res, err := s.Estimate(ctx, req)
	if err != nil {
		return 0, err
	}
	return res.Premium, nil
}

func (s *IntakeService) Estimate(ctx context.Context, req request_models.PremiumRequest) (IntakeResult, error) {
	premium, err := s.predictor.Predict(ctx, req)
	if err != nil {
		return IntakeResult{}, err
	}

	res := IntakeResult{
		Premium: premium,
		Record:  db_models.NewPremiumRecord(req, premium),
	}
	if s.sink == nil {
		return res, nil
	}

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.recordTimeout)
	defer cancel()

	if err := s.sink.Append(rctx, res.Record); err != nil {
		res.RecordErr = err
		s.logger.Warn("failed to record premium estimate",
			zap.Error(err),
			zap.Float64("premium", premium))
	}
	return res, nil
}
