package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	KindLinear       = "linear"
	KindTreeEnsemble = "tree_ensemble"

	AggregationMean = "mean"
	AggregationSum  = "sum"
)

//go:embed artifact_schema.json
var artifactSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(artifactSchema)

// Artifact is the on-disk model document.
type Artifact struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Kind         string          `json:"kind"`
	Target       string          `json:"target"`
	FeatureNames []string        `json:"feature_names"`
	Linear       *LinearParams   `json:"linear,omitempty"`
	Ensemble     *EnsembleParams `json:"ensemble,omitempty"`
}

type LinearParams struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

type EnsembleParams struct {
	Aggregation  string     `json:"aggregation"`
	BaseScore    float64    `json:"base_score"`
	LearningRate *float64   `json:"learning_rate,omitempty"`
	Trees        []TreeData `json:"trees"`
}

// TreeData uses the flat node arrays of a fitted regression tree. Node 0 is
// the root; a node with ChildrenLeft == -1 is a leaf.
type TreeData struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

func validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("schema violation: %s", strings.Join(errs, "; "))
	}
	return nil
}

func decodeArtifact(data []byte) (*Artifact, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &a, nil
}
