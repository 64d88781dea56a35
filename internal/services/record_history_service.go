package services

import (
	"context"

	"go.uber.org/zap"
	"premiumcalc/internal/models/response_models"
	"premiumcalc/internal/repositories"
	"premiumcalc/pkg/utils"
)

const maxHistoryPageSize = 100

type RecordHistoryServiceInterface interface {
	ListRecords(ctx context.Context, page int, pageSize int) (response_models.PremiumRecordListResponse, error)
}

type RecordHistoryService struct {
	repo repositories.PremiumRecordRepositoryInterface
}

// NewRecordHistoryService accepts a nil repository when postgres is not
// configured; every read then fails with ErrHistoryUnavailable.
func NewRecordHistoryService(repo repositories.PremiumRecordRepositoryInterface) RecordHistoryServiceInterface {
	return &RecordHistoryService{repo: repo}
}

func (s *RecordHistoryService) ListRecords(ctx context.Context, page int, pageSize int) (response_models.PremiumRecordListResponse, error) {
	if s.repo == nil {
		return response_models.PremiumRecordListResponse{}, utils.ErrHistoryUnavailable
	}
	if page < 1 {
		return response_models.PremiumRecordListResponse{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxHistoryPageSize {
		return response_models.PremiumRecordListResponse{}, utils.ErrInvalidPageSize
	}

	records, err := s.repo.ListRecords(ctx, page, pageSize)
	if err != nil {
		zap.L().Error("list premium records", zap.Error(err))
		return response_models.PremiumRecordListResponse{}, utils.ErrDatabaseError
	}

	out := make([]response_models.PremiumRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, response_models.PremiumRecordResponse{
			ID:                      r.ID,
			CreatedAt:               utils.FormatUnixRFC3339(r.CreatedAt),
			Age:                     r.Age,
			BMI:                     r.BMI,
			Weight:                  r.Weight,
			Height:                  r.Height,
			Diabetes:                r.Diabetes,
			BloodPressureProblems:   r.BloodPressureProblems,
			AnyTransplants:          r.AnyTransplants,
			AnyChronicDiseases:      r.AnyChronicDiseases,
			KnownAllergies:          r.KnownAllergies,
			HistoryOfCancerInFamily: r.HistoryOfCancerInFamily,
			NumberOfMajorSurgeries:  r.NumberOfMajorSurgeries,
			PredictedPremium:        response_models.Premium(r.PredictedPremium),
		})
	}

	return response_models.PremiumRecordListResponse{
		Page:     page,
		PageSize: pageSize,
		Records:  out,
	}, nil
}
