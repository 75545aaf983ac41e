package service

import (
	"context"

	"destinos/internal/domain/entity"
)

// RegionFilter narrows a catalog fetch. Empty fields mean no filter.
type RegionFilter struct {
	Department string
	Category   string
	Limit      int
}

// CatalogProvider supplies the tourism destination catalog.
// Implementations return destinations in a stable order and may fail with
// domain errors.ErrCatalogUnavailable when the upstream cannot be reached.
type CatalogProvider interface {
	ListDestinations(ctx context.Context, filter RegionFilter) ([]*entity.Destination, error)
}
