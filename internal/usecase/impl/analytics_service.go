package impl

import (
	"context"
	"log/slog"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/domain/scoring"
	"destinos/internal/domain/service"
	"destinos/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPopularLimit = 10
	maxPopularLimit     = 100
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	catalog         service.CatalogProvider
	profileRepo     repository.ProfileRepository
	interactionRepo repository.InteractionRepository
	logger          *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	catalog service.CatalogProvider,
	profileRepo repository.ProfileRepository,
	interactionRepo repository.InteractionRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		catalog:         catalog,
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

// PopularDestinations joins like and view counts with catalog records, most interacted first.
// Destinations no longer in the catalog are skipped.
func (srv *analyticsService) PopularDestinations(ctx context.Context, limit int) ([]*entity.Destination, error) {
	limit = clampLimit(limit, defaultPopularLimit, maxPopularLimit)

	var (
		counts  []repository.DestinationCount
		catalog []*entity.Destination
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = srv.interactionRepo.CountByDestination(gctx, []entity.Action{entity.ActionLike, entity.ActionView})

		return errors.Wrap(err, "failed to count interactions")
	})
	g.Go(func() error {
		var err error
		catalog, err = srv.catalog.ListDestinations(gctx, service.RegionFilter{})
		if err != nil {
			return asCatalogUnavailable(err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Destination, len(catalog))
	for _, d := range catalog {
		if _, dup := byID[d.ID]; !dup {
			byID[d.ID] = d
		}
	}

	popular := make([]*entity.Destination, 0, limit)
	for _, dc := range counts {
		if len(popular) >= limit {
			break
		}
		d, ok := byID[dc.DestinationID]
		if !ok {
			continue
		}
		annotated := scoring.Annotate(d)
		annotated.InteractionCount = dc.Count
		popular = append(popular, annotated)
	}

	return popular, nil
}

// Trends counts every interaction once per preferred department and category of
// the interacting user, and once for their travel style.
func (srv *analyticsService) Trends(ctx context.Context) (*usecase.TrendsOutput, error) {
	profiles, err := srv.profileRepo.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	interactions, err := srv.interactionRepo.List(ctx, repository.InteractionFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interactions")
	}

	totalUsers, err := srv.profileRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles")
	}
	totalInteractions, err := srv.interactionRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count interactions")
	}

	byUser := make(map[string]*entity.UserProfile, len(profiles))
	for _, p := range profiles {
		byUser[p.ID] = p
	}

	out := &usecase.TrendsOutput{
		Departments:       map[string]int{},
		Categories:        map[string]int{},
		TravelStyles:      map[string]int{},
		TotalUsers:        totalUsers,
		TotalInteractions: totalInteractions,
	}
	for _, it := range interactions {
		p, ok := byUser[it.UserID]
		if !ok {
			continue
		}
		for _, dept := range p.PreferredDepartments {
			out.Departments[scoring.DepartmentDisplay(dept)]++
		}
		for _, cat := range p.PreferredCategories {
			out.Categories[cat]++
		}
		if p.TravelStyle != "" {
			out.TravelStyles[p.TravelStyle]++
		}
	}

	return out, nil
}
