package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"

	"cognovoid/internal/cache"
	"cognovoid/internal/model"
	"cognovoid/internal/predictor"
	"cognovoid/internal/scoring"
)

// ScoreService runs the scoring pipeline: normalize -> scale -> predict ->
// compose. It owns the static feature tables and the loaded model; both
// are read-only after construction, so one instance serves all requests.
type ScoreService struct {
	specs   []model.FeatureSpec
	cats    []model.CategoricalSpec
	adapter *predictor.Adapter
	cache   cache.ReportCache // may be nil
	policy  scoring.Policy
}

// NewScoreService creates a new score service. reportCache may be nil to
// run uncached.
func NewScoreService(adapter *predictor.Adapter, reportCache cache.ReportCache, policy scoring.Policy) *ScoreService {
	return &ScoreService{
		specs:   scoring.Specs,
		cats:    scoring.CategoricalSpecs,
		adapter: adapter,
		cache:   reportCache,
		policy:  policy,
	}
}

// Score produces a risk report for one raw payload.
func (s *ScoreService) Score(ctx context.Context, raw map[string]interface{}) (*model.RiskReport, error) {
	feats := scoring.Normalize(raw, s.specs, s.cats)

	key := s.cacheKey(feats)
	if s.cache != nil {
		// cache failures fall through to a fresh computation
		if report, err := s.cache.GetReport(ctx, key); err == nil && report != nil {
			return report, nil
		}
	}

	scores := scoring.Severities(feats, s.specs, s.cats)

	pred, err := s.adapter.Predict(feats)
	if err != nil {
		return nil, err
	}

	report := scoring.Compose(pred, scores, feats, s.policy)

	if s.cache != nil {
		// best effort; a failed write only costs a recomputation
		_ = s.cache.SetReport(ctx, key, report)
	}

	return report, nil
}

// cacheKey hashes the canonical features in deterministic order. The policy
// is part of the key so redeployments with a different policy never serve
// stale scores.
func (s *ScoreService) cacheKey(feats model.CanonicalFeatures) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "policy=%s;", s.policy)

	names := make([]string, 0, len(feats.Values))
	for name := range feats.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(h, "%s=%g;", name, feats.Values[name])
	}

	labels := make([]string, 0, len(feats.Labels))
	for name := range feats.Labels {
		labels = append(labels, name)
	}
	sort.Strings(labels)
	for _, name := range labels {
		fmt.Fprintf(h, "%s=%s;", name, feats.Labels[name])
	}

	missing := append([]string(nil), feats.Missing...)
	sort.Strings(missing)
	for _, name := range missing {
		fmt.Fprintf(h, "miss=%s;", name)
	}

	return fmt.Sprintf("%x", h.Sum64())
}
