package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"deal-marketplace/internal/infra/cache"
	"deal-marketplace/internal/pkg/config"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewDealCache,
	),
)

// NewDealCache falls back to a pass-through cache when REDIS_ADDR is unset.
func NewDealCache(lc fx.Lifecycle, cfg config.Config) (queries.PublishedDealCache, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled, published deals are read through directly")
		return cache.NoopDealCache{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return cache.NewRedisDealCache(rdb, cfg.Redis.DealTTL), nil
}
