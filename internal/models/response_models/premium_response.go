package response_models

import (
	"strconv"

	"github.com/google/uuid"
)

// Premium always renders with exactly two decimals, e.g. 24020.00.
type Premium float64

func (p Premium) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 2, 64)), nil
}

type PredictionResponse struct {
	PredictedPremium Premium `json:"PredictedPremium"`
}

type PremiumRecordResponse struct {
	ID                      uuid.UUID `json:"id"`
	CreatedAt               string    `json:"created_at"` // RFC3339
	Age                     int       `json:"Age"`
	BMI                     float64   `json:"BMI"`
	Weight                  int       `json:"Weight"`
	Height                  int       `json:"Height"`
	Diabetes                int       `json:"Diabetes"`
	BloodPressureProblems   int       `json:"BloodPressureProblems"`
	AnyTransplants          int       `json:"AnyTransplants"`
	AnyChronicDiseases      int       `json:"AnyChronicDiseases"`
	KnownAllergies          int       `json:"KnownAllergies"`
	HistoryOfCancerInFamily int       `json:"HistoryOfCancerInFamily"`
	NumberOfMajorSurgeries  int       `json:"NumberOfMajorSurgeries"`
	PredictedPremium        Premium   `json:"PredictedPremium"`
}

type PremiumRecordListResponse struct {
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Records  []PremiumRecordResponse `json:"records"`
}

type ModelInfoResponse struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Kind         string   `json:"kind"`
	Target       string   `json:"target"`
	FeatureNames []string `json:"feature_names"`
}
