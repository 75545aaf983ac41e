package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/entity"
	"destinos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// cacheStore is the part of the redis client the cache needs.
type cacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// cachedProvider serves the full catalog from redis while the entry is fresh
// and filters it locally. Redis failures degrade to a direct upstream call.
type cachedProvider struct {
	inner  service.CatalogProvider
	store  cacheStore
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedProvider wraps inner with a read-through redis cache of the unfiltered catalog.
func NewCachedProvider(inner service.CatalogProvider, store cacheStore, prefix string, ttl time.Duration, logger *slog.Logger) service.CatalogProvider {
	if prefix == "" {
		prefix = "destinos"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &cachedProvider{
		inner:  inner,
		store:  store,
		key:    prefix + ":catalog:v1",
		ttl:    ttl,
		logger: logger,
	}
}

func (p *cachedProvider) ListDestinations(ctx context.Context, filter service.RegionFilter) ([]*entity.Destination, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	snapshot, err := p.load(ctx)
	switch {
	case err == nil:
		return applyFilter(snapshot, nil, filter), nil
	case !errors.Is(err, redis.Nil):
		logger.Warn("Catalog cache read failed", slog.Any("error", err))
	}

	snapshot, err = p.inner.ListDestinations(ctx, service.RegionFilter{})
	if err != nil {
		return nil, err
	}
	if err := p.save(ctx, snapshot); err != nil {
		logger.Warn("Catalog cache write failed", slog.Any("error", err))
	}

	return applyFilter(snapshot, nil, filter), nil
}

func (p *cachedProvider) load(ctx context.Context) ([]*entity.Destination, error) {
	raw, err := p.store.Get(ctx, p.key).Bytes()
	if err != nil {
		return nil, err
	}

	var snapshot []*entity.Destination
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached catalog")
	}

	return snapshot, nil
}

func (p *cachedProvider) save(ctx context.Context, snapshot []*entity.Destination) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(p.store.Set(ctx, p.key, raw, p.ttl).Err())
}
