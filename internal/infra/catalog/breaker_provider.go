package catalog

import (
	"context"
	"log/slog"
	"time"

	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/service"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerOptions mirrors the gobreaker settings exposed in configuration.
type BreakerOptions struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// breakerProvider stops calling a failing catalog until the breaker half-opens.
type breakerProvider struct {
	inner service.CatalogProvider
	cb    *gobreaker.CircuitBreaker[[]*entity.Destination]
}

// NewBreakerProvider wraps inner with a circuit breaker that opens after
// FailureThreshold consecutive failures.
func NewBreakerProvider(inner service.CatalogProvider, opts BreakerOptions, logger *slog.Logger) service.CatalogProvider {
	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = 3
	}

	cb := gobreaker.NewCircuitBreaker[[]*entity.Destination](gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: opts.MaxRequests,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[CatalogBreaker] State transition",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// Caller cancellation says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &breakerProvider{inner: inner, cb: cb}
}

func (p *breakerProvider) ListDestinations(ctx context.Context, filter service.RegionFilter) ([]*entity.Destination, error) {
	destinations, err := p.cb.Execute(func() ([]*entity.Destination, error) {
		return p.inner.ListDestinations(ctx, filter)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.WithStack(domainerrors.ErrCatalogUnavailable.WithDetails("catalog circuit " + p.cb.State().String()))
		}

		return nil, err
	}

	return destinations, nil
}
