package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"premiumcalc/internal/model"
	"premiumcalc/internal/models/db_models"
	"premiumcalc/internal/models/request_models"
)

type mockModel struct {
	mock.Mock
}

func (m *mockModel) Predict(features []float64) (float64, error) {
	args := m.Called(features)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockModel) FeatureNames() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *mockModel) Info() model.Info {
	args := m.Called()
	return args.Get(0).(model.Info)
}

type mockPredictor struct {
	mock.Mock
}

func (m *mockPredictor) Predict(ctx context.Context, req request_models.PremiumRequest) (float64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(float64), args.Error(1)
}

type mockSink struct {
	mock.Mock
	name string
}

func (m *mockSink) Name() string { return m.name }

func (m *mockSink) Append(ctx context.Context, record db_models.PremiumRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type mockRecordRepo struct {
	mock.Mock
}

func (m *mockRecordRepo) Append(ctx context.Context, record *db_models.PremiumRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRecordRepo) ListRecords(ctx context.Context, page int, pageSize int) ([]db_models.PremiumRecord, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PremiumRecord), args.Error(1)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// exampleRequest is the documented sample applicant.
func exampleRequest() request_models.PremiumRequest {
	return request_models.PremiumRequest{
		Age:                     intPtr(35),
		BMI:                     floatPtr(24.2),
		Weight:                  intPtr(70),
		Height:                  intPtr(170),
		Diabetes:                intPtr(0),
		BloodPressureProblems:   intPtr(1),
		AnyTransplants:          intPtr(0),
		AnyChronicDiseases:      intPtr(0),
		KnownAllergies:          intPtr(0),
		HistoryOfCancerInFamily: intPtr(1),
		NumberOfMajorSurgeries:  intPtr(1),
	}
}
