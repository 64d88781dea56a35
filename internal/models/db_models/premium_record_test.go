package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"premiumcalc/internal/models/request_models"
)

func TestNewPremiumRecord_RowOrder(t *testing.T) {
	i := func(v int) *int { return &v }
	bmi := 24.2
	req := request_models.PremiumRequest{
		Age: i(35), BMI: &bmi, Weight: i(70), Height: i(170),
		Diabetes: i(0), BloodPressureProblems: i(1), AnyTransplants: i(0),
		AnyChronicDiseases: i(0), KnownAllergies: i(0),
		HistoryOfCancerInFamily: i(1), NumberOfMajorSurgeries: i(1),
	}

	rec := NewPremiumRecord(req, 24020.004)
	row := rec.Row()

	require.Len(t, row, len(RecordColumns))
	assert.Equal(t, []interface{}{35, 24.2, 70, 170, 0, 1, 0, 0, 0, 1, 1, 24020.0}, row)
	assert.Equal(t, "PredictedPremium", RecordColumns[len(RecordColumns)-1])
}

func TestBaseModel_BeforeCreate(t *testing.T) {
	rec := PremiumRecord{}
	require.NoError(t, rec.BeforeCreate(nil))
	assert.NotEmpty(t, rec.ID.String())
	assert.Positive(t, rec.CreatedAt)

	id, created := rec.ID, rec.CreatedAt
	require.NoError(t, rec.BeforeCreate(nil))
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, created, rec.CreatedAt)
}
