package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cognovoid/internal/model"
)

// ReportCache handles Redis operations for scored reports. The scoring
// path is a deterministic function of the canonical features, so cached
// reports stay identical to recomputed ones.
type ReportCache interface {
	GetReport(ctx context.Context, key string) (*model.RiskReport, error)
	SetReport(ctx context.Context, key string, report *model.RiskReport) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *reportCache) reportKey(key string) string {
	return "score:" + key
}

func (c *reportCache) GetReport(ctx context.Context, key string) (*model.RiskReport, error) {
	data, err := c.client.Get(ctx, c.reportKey(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.RiskReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) SetReport(ctx context.Context, key string, report *model.RiskReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.reportKey(key), data, c.ttl).Err()
}
