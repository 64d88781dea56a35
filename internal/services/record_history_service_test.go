package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"premiumcalc/internal/models/db_models"
	"premiumcalc/pkg/utils"
)

func TestRecordHistoryService_ListRecords(t *testing.T) {
	id := uuid.New()
	repo := &mockRecordRepo{}
	repo.On("ListRecords", mock.Anything, 1, 20).Return([]db_models.PremiumRecord{
		{
			BaseModel:        db_models.BaseModel{ID: id, CreatedAt: 1704164645},
			Age:              35,
			BMI:              24.2,
			PredictedPremium: 24020,
		},
	}, nil)

	out, err := NewRecordHistoryService(repo).ListRecords(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, out.Records, 1)
	assert.Equal(t, id, out.Records[0].ID)
	assert.Equal(t, "2024-01-02T03:04:05Z", out.Records[0].CreatedAt)

	body, err := json.Marshal(out.Records[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), `"PredictedPremium":24020.00`)
}

func TestRecordHistoryService_Errors(t *testing.T) {
	repo := &mockRecordRepo{}
	repo.On("ListRecords", mock.Anything, 2, 10).Return(nil, errors.New("timeout"))
	svc := NewRecordHistoryService(repo)

	_, err := svc.ListRecords(context.Background(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListRecords(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListRecords(context.Background(), 2, 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestRecordHistoryService_Unavailable(t *testing.T) {
	_, err := NewRecordHistoryService(nil).ListRecords(context.Background(), 1, 20)
	assert.ErrorIs(t, err, utils.ErrHistoryUnavailable)
}
