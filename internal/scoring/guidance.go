package scoring

import "cognovoid/internal/model"

type guidanceRule struct {
	feature string
	fires   func(v float64) bool
	advice  string
}

// Rules are independent and non-exclusive; several can fire on one request.
// Order here is the order advice appears in the response.
var guidanceRules = []guidanceRule{
	{"loneliness", func(v float64) bool { return v >= 3 }, "High loneliness: consider social interaction."},
	{"socialSupport", func(v float64) bool { return v <= 2 }, "Low support: reach out to friends/family."},
	{"workHours", func(v float64) bool { return v >= 55 }, "High workload: schedule recovery breaks."},
	{"sleep", func(v float64) bool { return v < 6 }, "Short sleep: aim for a consistent wind-down routine."},
	{"exercise", func(v float64) bool { return v < 10 }, "Low movement: even a short walk helps."},
	{"socialHours", func(v float64) bool { return v < 1 }, "Little social time: a quick call with a friend counts."},
}

// Guidance runs the advisory rule checks against the canonical features.
// Features the user never supplied are skipped so defaults don't trigger
// advice about answers that were never given.
func Guidance(f model.CanonicalFeatures) []string {
	missing := make(map[string]bool, len(f.Missing))
	for _, name := range f.Missing {
		missing[name] = true
	}

	advice := []string{}
	for _, rule := range guidanceRules {
		if missing[rule.feature] {
			continue
		}
		if rule.fires(f.Values[rule.feature]) {
			advice = append(advice, rule.advice)
		}
	}
	return advice
}
