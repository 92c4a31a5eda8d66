package model

// RiskReport is the scoring response payload. Maps and slices are always
// non-nil so the JSON shape stays stable for consumers.
type RiskReport struct {
	State              string             `json:"state"`
	RiskScore          int                `json:"risk_score"`
	Message            string             `json:"message"`
	Inputs             map[string]float64 `json:"inputs"`
	InputsCategorical  map[string]string  `json:"inputs_categorical"`
	FeatureScores      SeverityScores     `json:"feature_scores"`
	ExtraGuidance      []string           `json:"extra_guidance"`
	StateProbabilities map[string]float64 `json:"state_probabilities"`
	MissingFeatures    []string           `json:"missing_features"`
}
