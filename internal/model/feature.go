package model

// FeatureSpec describes one canonical quiz feature and how to find it in a payload
type FeatureSpec struct {
	Name    string
	Aliases []string // scanned in order, first usable value wins
	Min     float64
	Max     float64
	// Positive means a higher raw value is healthier, so severity inverts
	Positive bool
	Default  float64 // substituted when no alias yields a usable value
}

// CategoricalSpec describes a categorical feature scored through a fixed lookup table
type CategoricalSpec struct {
	Name    string
	Aliases []string
	Scores  map[string]int // label -> severity in [0,100]
	Default string
}

// CanonicalFeatures is the fully-populated feature vector for one request.
// Values always holds one entry per FeatureSpec and Labels one entry per
// CategoricalSpec; defaults are substituted for anything absent.
type CanonicalFeatures struct {
	Values  map[string]float64
	Labels  map[string]string
	Missing []string // canonical names absent/unparsable under every alias
}

// SeverityScores maps canonical feature name -> severity in [0,100]
type SeverityScores map[string]int
