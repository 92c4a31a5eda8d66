package scoring

import (
	"math"

	"cognovoid/internal/model"
)

// Scale maps a raw value onto a 0-100 severity band for the [min,max]
// range. The value is clamped first, then linearly rescaled; invert flips
// the band for features where a higher raw value is healthier. Rounding is
// math.Round, i.e. halves away from zero. A degenerate range (max <= min)
// yields 0: no signal, not an error.
func Scale(value, min, max float64, invert bool) int {
	if max <= min {
		return 0
	}
	clamped := math.Max(min, math.Min(max, value))
	scaled := (clamped - min) / (max - min) * 100.0
	if invert {
		scaled = 100.0 - scaled
	}
	return int(math.Round(scaled))
}

// Severities scores every canonical feature independently. Categorical
// features go through their fixed lookup tables instead of a linear rescale.
func Severities(f model.CanonicalFeatures, specs []model.FeatureSpec, cats []model.CategoricalSpec) model.SeverityScores {
	scores := make(model.SeverityScores, len(specs)+len(cats))
	for _, spec := range specs {
		scores[spec.Name] = Scale(f.Values[spec.Name], spec.Min, spec.Max, spec.Positive)
	}
	for _, cat := range cats {
		label := f.Labels[cat.Name]
		severity, ok := cat.Scores[label]
		if !ok {
			severity = cat.Scores[cat.Default]
		}
		scores[cat.Name] = severity
	}
	return scores
}
