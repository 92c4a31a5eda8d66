package scoring

import (
	"math"
	"sort"
	"strings"

	"cognovoid/internal/model"
)

// Policy selects how the final risk score is composed. Continuous
// predictions always use the blended formula; for categorical predictions
// the configured policy applies, falling back to discrete when the model
// exposes no distribution.
type Policy string

const (
	PolicyWeighted       Policy = "weighted"
	PolicyDiscrete       Policy = "discrete"
	PolicyBlended        Policy = "blended"
	PolicyFeatureAverage Policy = "feature_average"
)

// ParsePolicy maps a config string to a Policy, defaulting to weighted.
func ParsePolicy(s string) Policy {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyDiscrete:
		return PolicyDiscrete
	case PolicyBlended:
		return PolicyBlended
	case PolicyFeatureAverage:
		return PolicyFeatureAverage
	default:
		return PolicyWeighted
	}
}

const defaultStateWeight = 50.0

// stateWeight returns the fixed risk weight for a known state label,
// matched by substring so "Very Stressed" still maps.
func stateWeight(label string) (float64, bool) {
	text := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(text, "calm"):
		return 10, true
	case strings.Contains(text, "stress"):
		return 70, true
	case strings.Contains(text, "angry"):
		return 90, true
	case strings.Contains(text, "impuls"):
		return 80, true
	}
	return 0, false
}

// fallbackWeights spaces weights evenly across [20,90] over the whole label
// vocabulary; unknown labels are assigned the weight at their vocabulary index.
func fallbackWeights(n int) []float64 {
	weights := make([]float64, n)
	if n == 1 {
		weights[0] = 20
		return weights
	}
	step := (90.0 - 20.0) / float64(n-1)
	for i := range weights {
		weights[i] = 20.0 + step*float64(i)
	}
	return weights
}

var stateMessages = map[string]string{
	"Calm":      "Balanced mental state detected. Decision clarity is likely stable.",
	"Stressed":  "Elevated emotional reactivity detected. Short recovery can improve decision clarity.",
	"Angry":     "High emotional activation detected. Delay major choices until steadier.",
	"Impulsive": "Reduced decision inhibition detected. Add a pause before committing to actions.",
}

const fallbackMessage = "Be mindful of your current mental state."

// stateForScore derives a state from a 0-100 risk score. Cutoffs are
// inclusive-low, exclusive-high except the final band.
func stateForScore(score int) string {
	switch {
	case score < 30:
		return "Calm"
	case score < 60:
		return "Stressed"
	case score < 80:
		return "Angry"
	default:
		return "Impulsive"
	}
}

// Compose blends the prediction and the per-feature severities into the
// final report. Deterministic for a given prediction, severity set and policy.
func Compose(pred *model.Prediction, scores model.SeverityScores, feats model.CanonicalFeatures, policy Policy) *model.RiskReport {
	var risk int
	var state string

	switch {
	case pred.Kind == model.PredictionContinuous:
		risk = blendedRisk(pred, scores)
		state = stateForScore(risk)
	case policy == PolicyFeatureAverage:
		risk = featureAverageRisk(pred.State, scores)
		state = pred.State
	case policy == PolicyWeighted && len(pred.Probabilities) > 0:
		risk = weightedRisk(pred.Probabilities)
		state = pred.State
	default:
		risk = discreteRisk(pred.State)
		state = pred.State
	}

	message, ok := stateMessages[state]
	if !ok {
		message = fallbackMessage
	}

	probabilities := pred.Probabilities
	if probabilities == nil {
		probabilities = map[string]float64{}
	}

	return &model.RiskReport{
		State:              state,
		RiskScore:          risk,
		Message:            message,
		Inputs:             feats.Values,
		InputsCategorical:  feats.Labels,
		FeatureScores:      scores,
		ExtraGuidance:      Guidance(feats),
		StateProbabilities: probabilities,
		MissingFeatures:    feats.Missing,
	}
}

// weightedRisk is the probability-weighted sum of fixed label weights.
// Labels outside the fixed table fall back to evenly spaced weights over
// the vocabulary, indexed by vocabulary order.
func weightedRisk(distribution map[string]float64) int {
	labels := sortedLabels(distribution)
	fallback := fallbackWeights(len(labels))

	total := 0.0
	for i, label := range labels {
		weight, known := stateWeight(label)
		if !known {
			weight = fallback[i]
		}
		total += distribution[label] * weight
	}
	return clampScore(total)
}

func discreteRisk(label string) int {
	weight, known := stateWeight(label)
	if !known {
		weight = defaultStateWeight
	}
	return clampScore(weight)
}

// blendedRisk mixes the rescaled model scalar (70%) with the mean feature
// severity (30%), categorical encodings included.
func blendedRisk(pred *model.Prediction, scores model.SeverityScores) int {
	rescaled := 0.0
	if pred.StressMax > pred.StressMin {
		rescaled = (pred.Stress - pred.StressMin) / (pred.StressMax - pred.StressMin) * 100.0
	}
	return clampScore(0.7*rescaled + 0.3*meanSeverity(scores))
}

func featureAverageRisk(label string, scores model.SeverityScores) int {
	weight, known := stateWeight(label)
	if !known {
		weight = defaultStateWeight
	}
	return clampScore((meanSeverity(scores) + weight) / 2.0)
}

func meanSeverity(scores model.SeverityScores) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += float64(s)
	}
	return sum / float64(len(scores))
}

func clampScore(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

func sortedLabels(distribution map[string]float64) []string {
	labels := make([]string, 0, len(distribution))
	for label := range distribution {
		labels = append(labels, label)
	}
	// the fitted label encoder sorts its vocabulary alphabetically, so
	// sorting here reconstructs vocabulary order
	sort.Strings(labels)
	return labels
}
