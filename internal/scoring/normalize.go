package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"cognovoid/internal/model"
)

// Normalize maps an arbitrary payload onto the canonical feature vector.
// For each spec the alias list is scanned in declared order and the first
// usable value wins; features with no usable value under any alias get
// their default and are recorded in Missing. Raw values are NOT clamped
// here; that happens in the scaler. Pure function.
func Normalize(raw map[string]interface{}, specs []model.FeatureSpec, cats []model.CategoricalSpec) model.CanonicalFeatures {
	out := model.CanonicalFeatures{
		Values:  make(map[string]float64, len(specs)),
		Labels:  make(map[string]string, len(cats)),
		Missing: []string{},
	}

	for _, spec := range specs {
		value, ok := firstFloat(raw, spec.Aliases)
		if !ok {
			value = spec.Default
			out.Missing = append(out.Missing, spec.Name)
		}
		out.Values[spec.Name] = value
	}

	for _, cat := range cats {
		label, ok := firstLabel(raw, cat)
		if !ok {
			label = cat.Default
			out.Missing = append(out.Missing, cat.Name)
		}
		out.Labels[cat.Name] = label
	}

	return out
}

func firstFloat(raw map[string]interface{}, aliases []string) (float64, bool) {
	for _, alias := range aliases {
		value, present := raw[alias]
		if !present || value == nil {
			continue
		}
		if f, ok := floatValue(value); ok {
			return f, true
		}
	}
	return 0, false
}

func firstLabel(raw map[string]interface{}, cat model.CategoricalSpec) (string, bool) {
	for _, alias := range cat.Aliases {
		value, present := raw[alias]
		if !present || value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(s))
		if _, known := cat.Scores[label]; known {
			return label, true
		}
	}
	return "", false
}

// floatValue is the explicit parse-or-default helper: anything that is not
// a finite number (or a string holding one) is treated as absent.
func floatValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, finite(v)
	case float32:
		return float64(v), finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil && finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil && finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
