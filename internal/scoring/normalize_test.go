package scoring

import (
	"testing"

	"cognovoid/internal/model"
)

var testSpecs = []model.FeatureSpec{
	{Name: "sleep", Aliases: []string{"sleep", "Sleep_Hours_Night"}, Min: 0, Max: 12, Positive: true},
	{Name: "stress", Aliases: []string{"stress"}, Min: 0, Max: 5},
	{Name: "mood", Aliases: []string{"mood"}, Min: 0, Max: 5, Positive: true, Default: 2.5},
}

func TestNormalizeFirstAliasWins(t *testing.T) {
	feats := Normalize(map[string]interface{}{
		"sleep":             6.0,
		"Sleep_Hours_Night": 8.0,
	}, testSpecs, nil)
	if feats.Values["sleep"] != 6.0 {
		t.Errorf("sleep = %g, want 6 (first alias)", feats.Values["sleep"])
	}
}

func TestNormalizeUnparsableFallsThroughToNextAlias(t *testing.T) {
	feats := Normalize(map[string]interface{}{
		"sleep":             "not a number",
		"Sleep_Hours_Night": 7.0,
	}, testSpecs, nil)
	if feats.Values["sleep"] != 7.0 {
		t.Errorf("sleep = %g, want 7 (second alias)", feats.Values["sleep"])
	}
	if contains(feats.Missing, "sleep") {
		t.Error("sleep marked missing although an alias was usable")
	}
}

func TestNormalizeDefaultsAndMissing(t *testing.T) {
	feats := Normalize(map[string]interface{}{"stress": 3}, testSpecs, nil)

	if feats.Values["stress"] != 3 {
		t.Errorf("stress = %g, want 3", feats.Values["stress"])
	}
	if feats.Values["sleep"] != 0 {
		t.Errorf("sleep default = %g, want 0", feats.Values["sleep"])
	}
	if feats.Values["mood"] != 2.5 {
		t.Errorf("mood default = %g, want 2.5", feats.Values["mood"])
	}
	if !contains(feats.Missing, "sleep") || !contains(feats.Missing, "mood") {
		t.Errorf("missing = %v, want sleep and mood", feats.Missing)
	}
	if contains(feats.Missing, "stress") {
		t.Error("stress marked missing although present")
	}
}

func TestNormalizeMissingCountsUnparsableAndNull(t *testing.T) {
	feats := Normalize(map[string]interface{}{
		"sleep":  nil,
		"stress": true, // wrong type
		"mood":   "",   // unparsable string
	}, testSpecs, nil)
	if len(feats.Missing) != 3 {
		t.Errorf("missing = %v, want all three features", feats.Missing)
	}
}

func TestNormalizeValueCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"float", 3.5, 3.5},
		{"int", 4, 4},
		{"numeric string", "2.25", 2.25},
		{"padded string", "  3 ", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feats := Normalize(map[string]interface{}{"stress": tt.value}, testSpecs, nil)
			if feats.Values["stress"] != tt.want {
				t.Errorf("stress = %g, want %g", feats.Values["stress"], tt.want)
			}
		})
	}
}

func TestNormalizeIgnoresUnknownKeys(t *testing.T) {
	feats := Normalize(map[string]interface{}{
		"stress":     2,
		"zodiacSign": "leo",
	}, testSpecs, nil)
	if len(feats.Values) != len(testSpecs) {
		t.Errorf("got %d values, want %d", len(feats.Values), len(testSpecs))
	}
}

func TestNormalizeAlwaysFullyPopulated(t *testing.T) {
	feats := Normalize(map[string]interface{}{}, Specs, CategoricalSpecs)
	if len(feats.Values) != len(Specs) {
		t.Errorf("got %d values, want one per spec (%d)", len(feats.Values), len(Specs))
	}
	if len(feats.Labels) != len(CategoricalSpecs) {
		t.Errorf("got %d labels, want one per categorical spec (%d)", len(feats.Labels), len(CategoricalSpecs))
	}
	if len(feats.Missing) != len(Specs)+len(CategoricalSpecs) {
		t.Errorf("missing = %d entries, want %d", len(feats.Missing), len(Specs)+len(CategoricalSpecs))
	}
}

func TestNormalizeCategorical(t *testing.T) {
	feats := Normalize(map[string]interface{}{
		"diet":    "  GOOD ",
		"weather": "hail", // not in the lookup table
	}, nil, CategoricalSpecs)

	if feats.Labels["diet"] != "good" {
		t.Errorf("diet = %q, want good", feats.Labels["diet"])
	}
	if feats.Labels["weather"] != "cloudy" {
		t.Errorf("weather = %q, want the cloudy default", feats.Labels["weather"])
	}
	if !contains(feats.Missing, "weather") {
		t.Error("weather with an unknown label should count as missing")
	}
	if contains(feats.Missing, "diet") {
		t.Error("diet marked missing although usable")
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
