package predictor

import (
	"fmt"
	"math"
)

// Meta describes what a fitted model expects and produces.
type Meta struct {
	Kind           Kind
	FeatureColumns []string // exact training column order, one-hot columns included
	Labels         []string // fitted label vocabulary, classifier only
	OutputMin      float64  // declared valid output range, regressor only
	OutputMax      float64
}

// Model is the opaque fitted predictor: a feature row in, a class index or
// scalar out. Implementations must be safe for concurrent use; they are
// shared read-only across requests.
type Model interface {
	Meta() Meta
	Predict(row []float64) (float64, error)
}

// ProbabilityModel is optionally implemented by models that expose a
// probability distribution over the label vocabulary.
type ProbabilityModel interface {
	PredictProba(row []float64) ([]float64, error)
}

// NewModel builds the in-process model from a loaded artifact.
func NewModel(art *Artifact) Model {
	if art.Kind == KindRegressor {
		return &regressorModel{
			meta: Meta{
				Kind:           KindRegressor,
				FeatureColumns: art.FeatureColumns,
				OutputMin:      art.OutputRange[0],
				OutputMax:      art.OutputRange[1],
			},
			weights:   art.Coefficients[0],
			intercept: art.Intercepts[0],
		}
	}
	return &classifierModel{
		meta: Meta{
			Kind:           KindClassifier,
			FeatureColumns: art.FeatureColumns,
			Labels:         art.Labels,
		},
		coefficients: art.Coefficients,
		intercepts:   art.Intercepts,
	}
}

type classifierModel struct {
	meta         Meta
	coefficients [][]float64
	intercepts   []float64
}

func (m *classifierModel) Meta() Meta { return m.meta }

// Predict returns the index of the highest-scoring class.
func (m *classifierModel) Predict(row []float64) (float64, error) {
	scores, err := m.classScores(row)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return float64(best), nil
}

// PredictProba returns a softmax distribution over the label vocabulary.
func (m *classifierModel) PredictProba(row []float64) ([]float64, error) {
	scores, err := m.classScores(row)
	if err != nil {
		return nil, err
	}
	max := scores[0]
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	sum := 0.0
	probs := make([]float64, len(scores))
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

func (m *classifierModel) classScores(row []float64) ([]float64, error) {
	if len(row) != len(m.meta.FeatureColumns) {
		return nil, fmt.Errorf("feature vector has %d values, model expects %d", len(row), len(m.meta.FeatureColumns))
	}
	scores := make([]float64, len(m.coefficients))
	for i, weights := range m.coefficients {
		s := m.intercepts[i]
		for j, w := range weights {
			s += w * row[j]
		}
		scores[i] = s
	}
	return scores, nil
}

type regressorModel struct {
	meta      Meta
	weights   []float64
	intercept float64
}

func (m *regressorModel) Meta() Meta { return m.meta }

func (m *regressorModel) Predict(row []float64) (float64, error) {
	if len(row) != len(m.meta.FeatureColumns) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(row), len(m.meta.FeatureColumns))
	}
	s := m.intercept
	for j, w := range m.weights {
		s += w * row[j]
	}
	return s, nil
}
