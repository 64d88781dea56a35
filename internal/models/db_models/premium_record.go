package db_models

import (
	"premiumcalc/internal/models/request_models"
	"premiumcalc/pkg/utils"
)

// RecordColumns is the header of a tabular record sink.
var RecordColumns = []string{
	request_models.FeatureAge,
	request_models.FeatureBMI,
	request_models.FeatureWeight,
	request_models.FeatureHeight,
	request_models.FeatureDiabetes,
	request_models.FeatureBloodPressureProblems,
	request_models.FeatureAnyTransplants,
	request_models.FeatureAnyChronicDiseases,
	request_models.FeatureKnownAllergies,
	request_models.FeatureHistoryOfCancerInFamily,
	request_models.FeatureNumberOfMajorSurgeries,
	"PredictedPremium",
}

type PremiumRecord struct {
	BaseModel
	Age                     int     `gorm:"not null"`
	BMI                     float64 `gorm:"column:bmi;not null"`
	Weight                  int     `gorm:"not null"`
	Height                  int     `gorm:"not null"`
	Diabetes                int     `gorm:"not null"`
	BloodPressureProblems   int     `gorm:"not null"`
	AnyTransplants          int     `gorm:"not null"`
	AnyChronicDiseases      int     `gorm:"not null"`
	KnownAllergies          int     `gorm:"not null"`
	HistoryOfCancerInFamily int     `gorm:"not null"`
	NumberOfMajorSurgeries  int     `gorm:"not null"`
	PredictedPremium        float64 `gorm:"not null"`
}

func (PremiumRecord) TableName() string { return "premium_records" }

// NewPremiumRecord copies a validated request. Absent fields become zero, so
// callers validate first.
func NewPremiumRecord(req request_models.PremiumRequest, premium float64) PremiumRecord {
	return PremiumRecord{
		Age:                     deref(req.Age),
		BMI:                     derefFloat(req.BMI),
		Weight:                  deref(req.Weight),
		Height:                  deref(req.Height),
		Diabetes:                deref(req.Diabetes),
		BloodPressureProblems:   deref(req.BloodPressureProblems),
		AnyTransplants:          deref(req.AnyTransplants),
		AnyChronicDiseases:      deref(req.AnyChronicDiseases),
		KnownAllergies:          deref(req.KnownAllergies),
		HistoryOfCancerInFamily: deref(req.HistoryOfCancerInFamily),
		NumberOfMajorSurgeries:  deref(req.NumberOfMajorSurgeries),
		PredictedPremium:        utils.RoundPremium(premium),
	}
}

// Row returns the record in RecordColumns order.
func (r PremiumRecord) Row() []interface{} {
	return []interface{}{
		r.Age,
		r.BMI,
		r.Weight,
		r.Height,
		r.Diabetes,
		r.BloodPressureProblems,
		r.AnyTransplants,
		r.AnyChronicDiseases,
		r.KnownAllergies,
		r.HistoryOfCancerInFamily,
		r.NumberOfMajorSurgeries,
		r.PredictedPremium,
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
