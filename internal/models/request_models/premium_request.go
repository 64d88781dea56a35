package request_models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"premiumcalc/pkg/utils"
)

const (
	FeatureAge                     = "Age"
	FeatureBMI                     = "BMI"
	FeatureWeight                  = "Weight"
	FeatureHeight                  = "Height"
	FeatureDiabetes                = "Diabetes"
	FeatureBloodPressureProblems   = "BloodPressureProblems"
	FeatureAnyTransplants          = "AnyTransplants"
	FeatureAnyChronicDiseases      = "AnyChronicDiseases"
	FeatureKnownAllergies          = "KnownAllergies"
	FeatureHistoryOfCancerInFamily = "HistoryOfCancerInFamily"
	FeatureNumberOfMajorSurgeries  = "NumberOfMajorSurgeries"
)

// FeatureNames is the column order the premium model was trained on.
var FeatureNames = []string{
	FeatureAge,
	FeatureDiabetes,
	FeatureBloodPressureProblems,
	FeatureAnyTransplants,
	FeatureAnyChronicDiseases,
	FeatureHeight,
	FeatureWeight,
	FeatureKnownAllergies,
	FeatureHistoryOfCancerInFamily,
	FeatureNumberOfMajorSurgeries,
	FeatureBMI,
}

// PremiumRequest carries the eleven intake fields. Pointers keep an absent key
// apart from a zero value.
type PremiumRequest struct {
	Age                     *int     `json:"Age" validate:"required,min=18,max=100"`
	BMI                     *float64 `json:"BMI" validate:"required,min=10,max=50"`
	Weight                  *int     `json:"Weight" validate:"required,min=30,max=200"`
	Height                  *int     `json:"Height" validate:"required,min=100,max=250"`
	Diabetes                *int     `json:"Diabetes" validate:"required,oneof=0 1"`
	BloodPressureProblems   *int     `json:"BloodPressureProblems" validate:"required,oneof=0 1"`
	AnyTransplants          *int     `json:"AnyTransplants" validate:"required,oneof=0 1"`
	AnyChronicDiseases      *int     `json:"AnyChronicDiseases" validate:"required,oneof=0 1"`
	KnownAllergies          *int     `json:"KnownAllergies" validate:"required,oneof=0 1"`
	HistoryOfCancerInFamily *int     `json:"HistoryOfCancerInFamily" validate:"required,oneof=0 1"`
	NumberOfMajorSurgeries  *int     `json:"NumberOfMajorSurgeries" validate:"required,oneof=0 1 2 3"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate reports every absent field first; range rules are only checked
// once all eleven fields are present.
func (r PremiumRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	var violations []utils.FieldViolation
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		violations = append(violations, utils.FieldViolation{
			Field:   fe.Field(),
			Message: ruleMessage(fe),
		})
	}

	if len(missing) > 0 {
		return &utils.MissingFieldError{Fields: missing}
	}
	return &utils.OutOfRangeError{Violations: violations}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be >= " + fe.Param()
	case "max":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ",")
	default:
		return "failed " + fe.Tag()
	}
}

// Feature returns the numeric value of a named feature.
func (r PremiumRequest) Feature(name string) (float64, bool, error) {
	var iv *int
	switch name {
	case FeatureAge:
		iv = r.Age
	case FeatureBMI:
		if r.BMI == nil {
			return 0, false, nil
		}
		return *r.BMI, true, nil
	case FeatureWeight:
		iv = r.Weight
	case FeatureHeight:
		iv = r.Height
	case FeatureDiabetes:
		iv = r.Diabetes
	case FeatureBloodPressureProblems:
		iv = r.BloodPressureProblems
	case FeatureAnyTransplants:
		iv = r.AnyTransplants
	case FeatureAnyChronicDiseases:
		iv = r.AnyChronicDiseases
	case FeatureKnownAllergies:
		iv = r.KnownAllergies
	case FeatureHistoryOfCancerInFamily:
		iv = r.HistoryOfCancerInFamily
	case FeatureNumberOfMajorSurgeries:
		iv = r.NumberOfMajorSurgeries
	default:
		return 0, false, fmt.Errorf("%w: %q", utils.ErrUnknownFeature, name)
	}
	if iv == nil {
		return 0, false, nil
	}
	return float64(*iv), true, nil
}

// FeatureVector lays the request out in the given column order.
func (r PremiumRequest) FeatureVector(order []string) ([]float64, error) {
	vec := make([]float64, 0, len(order))
	var missing []string
	for _, name := range order {
		v, ok, err := r.Feature(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, name)
			continue
		}
		vec = append(vec, v)
	}
	if len(missing) > 0 {
		return nil, &utils.MissingFieldError{Fields: missing}
	}
	return vec, nil
}
