package catalog

import (
	"context"
	"log/slog"

	"destinos/config"
	"destinos/internal/domain/lifecycle"
	"destinos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the CatalogProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Metrics service.EngineMetrics
	Logger  *slog.Logger
}

// NewCatalogProvider builds the configured source, then layers the circuit
// breaker and the redis cache on top when enabled.
func NewCatalogProvider(params ProviderParams) (service.CatalogProvider, error) {
	cfg := params.Config.Catalog
	logger := params.Logger

	var (
		provider service.CatalogProvider
		err      error
	)

	switch cfg.Source {
	case config.CatalogSourceRNT:
		provider, err = NewRNTProvider(RNTOptions{
			BaseURL:      cfg.BaseURL,
			DatasetLimit: cfg.DatasetLimit,
			Departments:  cfg.Departments,
			Timeout:      cfg.Timeout,
		}, params.Metrics, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using RNT open-data catalog", slog.String("url", cfg.BaseURL))

	case config.CatalogSourceBlob:
		if cfg.Snapshot == nil || cfg.Snapshot.BucketURL == "" || cfg.Snapshot.Key == "" {
			return nil, errors.New("snapshot bucket URL and key are required for blob source")
		}
		bucket, err := OpenBucket(params.Ctx, cfg.Snapshot.BucketURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})
		provider = NewBlobProvider(bucket, cfg.Snapshot.Key, cfg.Departments, params.Metrics, logger)
		logger.Info("Using catalog snapshot",
			slog.String("bucket", cfg.Snapshot.BucketURL),
			slog.String("key", cfg.Snapshot.Key),
		)

	default:
		return nil, errors.Errorf("unknown catalog source: %s", cfg.Source)
	}

	if b := cfg.Breaker; b != nil && b.Enabled {
		provider = NewBreakerProvider(provider, BreakerOptions{
			Name:             "catalog-" + cfg.Source,
			MaxRequests:      b.MaxRequests,
			Interval:         b.Interval,
			Timeout:          b.Timeout,
			FailureThreshold: b.FailureThreshold,
		}, logger)
	}

	if c := cfg.Cache; c != nil && c.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     c.Addr,
			Password: c.Password,
			DB:       c.DB,
		})
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()
				if err := client.Ping(pingCtx).Err(); err != nil {
					logger.Warn("Catalog cache unreachable, reads go upstream", slog.Any("error", err))
				}

				return nil
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})
		provider = NewCachedProvider(provider, client, c.Prefix, c.TTL, logger)
	}

	return provider, nil
}

// Module provides the catalog FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogProvider),
)
