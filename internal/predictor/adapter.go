package predictor

import (
	"fmt"
	"math"

	"cognovoid/internal/model"
)

// PredictionError wraps a model failure. The underlying message is kept
// verbatim and surfaced to the caller; this service trades verbosity for
// operability.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string { return e.Err.Error() }
func (e *PredictionError) Unwrap() error { return e.Err }

// Adapter aligns the canonical feature vector to whatever the fitted model
// expects and normalizes its raw output. Mismatched column order is the
// bug class this type exists to prevent.
type Adapter struct {
	model Model
}

// NewAdapter wraps an opaque fitted model.
func NewAdapter(m Model) *Adapter {
	return &Adapter{model: m}
}

// Predict invokes the model on the canonical features and normalizes the
// result. Model failures, NaN/Inf outputs and vocabulary mismatches all
// come back as a *PredictionError.
func (a *Adapter) Predict(feats model.CanonicalFeatures) (*model.Prediction, error) {
	meta := a.model.Meta()
	row := a.buildRow(feats, meta.FeatureColumns)

	raw, err := a.model.Predict(row)
	if err != nil {
		return nil, &PredictionError{Err: err}
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil, &PredictionError{Err: fmt.Errorf("model produced a non-finite value")}
	}

	if meta.Kind == KindRegressor {
		// clamp into the declared valid range before any band derivation
		clamped := math.Max(meta.OutputMin, math.Min(meta.OutputMax, raw))
		return &model.Prediction{
			Kind:          model.PredictionContinuous,
			Stress:        clamped,
			StressMin:     meta.OutputMin,
			StressMax:     meta.OutputMax,
			Probabilities: map[string]float64{},
		}, nil
	}

	idx := int(raw)
	if idx < 0 || idx >= len(meta.Labels) {
		return nil, &PredictionError{Err: fmt.Errorf("class index %d outside label vocabulary of size %d", idx, len(meta.Labels))}
	}

	pred := &model.Prediction{
		Kind:          model.PredictionCategorical,
		State:         meta.Labels[idx],
		Probabilities: map[string]float64{},
	}

	if pm, ok := a.model.(ProbabilityModel); ok {
		probs, err := pm.PredictProba(row)
		if err != nil {
			return nil, &PredictionError{Err: err}
		}
		if len(probs) != len(meta.Labels) {
			return nil, &PredictionError{Err: fmt.Errorf("distribution has %d entries, vocabulary has %d", len(probs), len(meta.Labels))}
		}
		// decode class index -> label through the fitted vocabulary;
		// index i is not assumed to equal class i anywhere else
		for i, p := range probs {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return nil, &PredictionError{Err: fmt.Errorf("model produced a non-finite probability")}
			}
			pred.Probabilities[meta.Labels[i]] = p
		}
	}

	return pred, nil
}

// buildRow reindexes the canonical features to the model's exact training
// column order. Categorical values match one-hot columns named
// "<feature>_<label>"; any column absent after encoding is filled with 0.
func (a *Adapter) buildRow(feats model.CanonicalFeatures, columns []string) []float64 {
	row := make([]float64, len(columns))
	for i, col := range columns {
		if v, ok := feats.Values[col]; ok {
			row[i] = v
			continue
		}
		for name, label := range feats.Labels {
			if col == name+"_"+label {
				row[i] = 1.0
				break
			}
		}
	}
	return row
}
