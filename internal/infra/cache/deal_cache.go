package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"deal-marketplace/internal/pkg/metrics"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const dealKeyPrefix = "deal:published:"

// RedisDealCache is a read-through cache for published deal views.
// Published deals never change state, so entries expire by TTL only.
type RedisDealCache struct {
	rdb   redis.Cmdable
	ttl   time.Duration
	group singleflight.Group
}

func NewRedisDealCache(rdb redis.Cmdable, ttl time.Duration) *RedisDealCache {
	return &RedisDealCache{rdb: rdb, ttl: ttl}
}

var _ queries.PublishedDealCache = (*RedisDealCache)(nil)

func (c *RedisDealCache) GetOrLoad(ctx context.Context, id uuid.UUID, load func(context.Context) (*queries.DealView, error)) (*queries.DealView, error) {
	key := dealKeyPrefix + id.String()

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v queries.DealView
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			metrics.DealCacheLookups.WithLabelValues("hit").Inc()
			return &v, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		// Redis being down degrades to direct loads.
		slog.Warn("deal cache read failed", "key", key, "error", err.Error())
	}
	metrics.DealCacheLookups.WithLabelValues("miss").Inc()

	res, err, _ := c.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*queries.DealView), nil
}

func (c *RedisDealCache) store(ctx context.Context, key string, v *queries.DealView) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("deal cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("deal cache write failed", "key", key, "error", err.Error())
	}
}

// NoopDealCache always loads; used when no Redis address is configured.
type NoopDealCache struct{}

func (NoopDealCache) GetOrLoad(ctx context.Context, _ uuid.UUID, load func(context.Context) (*queries.DealView, error)) (*queries.DealView, error) {
	return load(ctx)
}

var _ queries.PublishedDealCache = NoopDealCache{}
