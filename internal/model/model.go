// Package model loads the premium regression artifact and evaluates it.
// A loaded Model is immutable and safe for concurrent use.
package model

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"premiumcalc/pkg/utils"
)

type Info struct {
	Name         string
	Version      string
	Kind         string
	Target       string
	FeatureNames []string
}

type Model struct {
	info     Info
	features []string
	reg      regressor
}

// Load reads and parses the artifact at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &utils.ModelLoadError{Path: path, Reason: "read artifact", Err: err}
	}
	m, err := Parse(data)
	if err != nil {
		var loadErr *utils.ModelLoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return m, nil
}

func Parse(data []byte) (*Model, error) {
	a, err := decodeArtifact(data)
	if err != nil {
		return nil, &utils.ModelLoadError{Reason: "invalid artifact", Err: err}
	}

	width := len(a.FeatureNames)
	var reg regressor
	switch a.Kind {
	case KindLinear:
		reg, err = newLinear(a.Linear, width)
	case KindTreeEnsemble:
		reg, err = newEnsemble(a.Ensemble, width)
	default:
		err = fmt.Errorf("unsupported kind %q", a.Kind)
	}
	if err != nil {
		return nil, &utils.ModelLoadError{Reason: "invalid " + a.Kind + " parameters", Err: err}
	}

	features := append([]string(nil), a.FeatureNames...)
	return &Model{
		info: Info{
			Name:    a.Name,
			Version: a.Version,
			Kind:    a.Kind,
			Target:  a.Target,
		},
		features: features,
		reg:      reg,
	}, nil
}

// Predict returns the unrounded estimate for a vector laid out in
// FeatureNames order.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.features) {
		return 0, &utils.ShapeError{Got: len(features), Want: len(m.features)}
	}
	return m.reg.predict(features), nil
}

// FeatureNames returns a copy of the trained column order.
func (m *Model) FeatureNames() []string {
	return append([]string(nil), m.features...)
}

func (m *Model) Info() Info {
	info := m.info
	info.FeatureNames = m.FeatureNames()
	return info
}

// RequireFeatures fails unless the artifact was trained on exactly the given
// feature set, in any order.
func (m *Model) RequireFeatures(names []string) error {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	have := make(map[string]bool, len(m.features))
	for _, n := range m.features {
		have[n] = true
	}

	var missing, extra []string
	for n := range want {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	for n := range have {
		if !want[n] {
			extra = append(extra, n)
		}
	}
	if len(missing) == 0 && len(extra) == 0 && len(want) == len(names) {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(extra)
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "artifact lacks "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "artifact has unknown "+strings.Join(extra, ", "))
	}
	if len(want) != len(names) {
		parts = append(parts, "duplicate feature names")
	}
	return &utils.ModelLoadError{Reason: "feature schema mismatch: " + strings.Join(parts, "; ")}
}
