package model

// PredictionKind discriminates the two shapes a fitted model can produce
type PredictionKind string

const (
	PredictionCategorical PredictionKind = "categorical"
	PredictionContinuous  PredictionKind = "continuous"
)

// Prediction is the normalized output of one model invocation
type Prediction struct {
	Kind PredictionKind

	// Categorical
	State         string
	Probabilities map[string]float64 // empty when the model exposes no distribution

	// Continuous
	Stress    float64 // clamped into [StressMin, StressMax]
	StressMin float64
	StressMax float64
}
