package predictor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Kind discriminates the two artifact shapes
type Kind string

const (
	KindClassifier Kind = "classifier"
	KindRegressor  Kind = "regressor"
)

// Artifact is the serialized form of a fitted model: the exported weights
// plus the metadata needed to invoke it correctly (fitted column order,
// label vocabulary, output range). Loaded once at startup; load failure is
// fatal.
type Artifact struct {
	Kind           Kind        `json:"kind"`
	Labels         []string    `json:"labels,omitempty"`
	FeatureColumns []string    `json:"feature_columns"`
	Coefficients   [][]float64 `json:"coefficients"`
	Intercepts     []float64   `json:"intercepts"`
	OutputRange    [2]float64  `json:"output_range,omitempty"`
}

// LoadArtifact reads and validates a model artifact file.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &art, nil
}

func (a *Artifact) validate() error {
	if len(a.FeatureColumns) == 0 {
		return fmt.Errorf("no feature columns")
	}
	switch a.Kind {
	case KindClassifier:
		if len(a.Labels) == 0 {
			return fmt.Errorf("classifier has no label vocabulary")
		}
		if len(a.Coefficients) != len(a.Labels) || len(a.Intercepts) != len(a.Labels) {
			return fmt.Errorf("expected %d coefficient rows and intercepts, got %d and %d",
				len(a.Labels), len(a.Coefficients), len(a.Intercepts))
		}
	case KindRegressor:
		if len(a.Coefficients) != 1 || len(a.Intercepts) != 1 {
			return fmt.Errorf("regressor needs exactly one coefficient row and intercept")
		}
		if a.OutputRange[1] <= a.OutputRange[0] {
			return fmt.Errorf("regressor output range [%g,%g] is degenerate", a.OutputRange[0], a.OutputRange[1])
		}
	default:
		return fmt.Errorf("unknown model kind %q", a.Kind)
	}
	for i, row := range a.Coefficients {
		if len(row) != len(a.FeatureColumns) {
			return fmt.Errorf("coefficient row %d has %d values, expected %d", i, len(row), len(a.FeatureColumns))
		}
	}
	return nil
}
