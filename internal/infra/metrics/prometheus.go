// Package metrics exposes engine activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "destinos"

// engineMetrics implements service.EngineMetrics on a dedicated registry.
type engineMetrics struct {
	recommendationDuration *prometheus.HistogramVec
	recommendationItems    *prometheus.HistogramVec
	pointsAwarded          *prometheus.CounterVec
	pointsTransactions     *prometheus.CounterVec
	redemptions            *prometheus.CounterVec
	catalogFetches         *prometheus.CounterVec
}

// Registry is the registry served on /metrics.
type Registry struct {
	*prometheus.Registry
}

// Handler returns the HTTP handler for the scrape endpoint.
func (r Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{Registry: r.Registry})
}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Registry{Registry: reg}
}

// NewEngineMetrics registers the engine collectors on reg.
func NewEngineMetrics(reg Registry) service.EngineMetrics {
	factory := promauto.With(reg.Registry)

	return &engineMetrics{
		recommendationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Duration of recommendation passes in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"strategy"}),
		recommendationItems: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_items",
			Help:      "Number of destinations returned per recommendation pass",
			Buckets:   []float64{0, 1, 5, 10, 20, 50},
		}, []string{"strategy"}),
		pointsAwarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Points credited to users, by transaction type",
		}, []string{"type"}),
		pointsTransactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_transactions_total",
			Help:      "Ledger entries appended, by transaction type and sign",
		}, []string{"type", "debit"}),
		redemptions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Redemption attempts by outcome",
		}, []string{"outcome"}),
		catalogFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_fetches_total",
			Help:      "Catalog reads by source and result",
		}, []string{"source", "result"}),
	}
}

func (m *engineMetrics) ObserveRecommendation(strategy entity.Strategy, items int, elapsed time.Duration) {
	m.recommendationDuration.WithLabelValues(string(strategy)).Observe(elapsed.Seconds())
	m.recommendationItems.WithLabelValues(string(strategy)).Observe(float64(items))
}

// IncPointsAwarded counts the entry. Only credits add to points_awarded_total.
func (m *engineMetrics) IncPointsAwarded(txType entity.TransactionType, points int) {
	debit := points < 0
	m.pointsTransactions.WithLabelValues(string(txType), strconv.FormatBool(debit)).Inc()
	if !debit {
		m.pointsAwarded.WithLabelValues(string(txType)).Add(float64(points))
	}
}

func (m *engineMetrics) IncRedemption(outcome string) {
	m.redemptions.WithLabelValues(outcome).Inc()
}

func (m *engineMetrics) IncCatalogFetch(source string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.catalogFetches.WithLabelValues(source, result).Inc()
}

// Module provides the metrics registry and the EngineMetrics port.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry, NewEngineMetrics),
)
