package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"parkingpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const planKeyPrefix = "parkingpro:plan:"

// RedisClient is the subset of redis.Cmdable the plan cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type PlanSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error)
}

// PlanCache is a read-through cache for subscription plans. Redis errors are
// logged and bypassed; only the source decides whether a plan exists.
type PlanCache struct {
	source PlanSource
	client RedisClient
	ttl    time.Duration
	logger *slog.Logger
}

type cachedPlan struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	DurationDays int             `json:"duration_days"`
	BasePrice    decimal.Decimal `json:"base_price"`
}

func NewPlanCache(source PlanSource, client RedisClient, ttl time.Duration, logger *slog.Logger) *PlanCache {
	return &PlanCache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *PlanCache) FindByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	key := planKey(id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cp cachedPlan
		decodeErr := json.Unmarshal(raw, &cp)
		if decodeErr == nil {
			return &shared.PlanSnapshot{
				ID:           cp.ID,
				Name:         cp.Name,
				DurationDays: cp.DurationDays,
				BasePrice:    cp.BasePrice,
			}, nil
		}
		c.logger.WarnContext(ctx, "plan cache: discarding undecodable entry", "key", key, "error", decodeErr)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "plan cache: read failed", "key", key, "error", err)
	}

	plan, err := c.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, plan)
	return plan, nil
}

func (c *PlanCache) store(ctx context.Context, key string, plan *shared.PlanSnapshot) {
	raw, err := json.Marshal(cachedPlan{
		ID:           plan.ID,
		Name:         plan.Name,
		DurationDays: plan.DurationDays,
		BasePrice:    plan.BasePrice,
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "plan cache: write failed", "key", key, "error", err)
	}
}

func planKey(id uuid.UUID) string {
	return planKeyPrefix + id.String()
}
