package service

import (
	"time"

	"destinos/internal/domain/entity"
)

// EngineMetrics records engine activity. Implementations must be safe for concurrent use.
type EngineMetrics interface {
	ObserveRecommendation(strategy entity.Strategy, items int, elapsed time.Duration)
	IncPointsAwarded(txType entity.TransactionType, points int)
	IncRedemption(outcome string)
	IncCatalogFetch(source string, err error)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ObserveRecommendation(entity.Strategy, int, time.Duration) {}
func (NopMetrics) IncPointsAwarded(entity.TransactionType, int)              {}
func (NopMetrics) IncRedemption(string)                                      {}
func (NopMetrics) IncCatalogFetch(string, error)                             {}
