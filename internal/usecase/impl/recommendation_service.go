package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"destinos/config"
	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/repository"
	"destinos/internal/domain/scoring"
	"destinos/internal/domain/service"
	"destinos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Reason fragments attached to recommended destinations.
const (
	reasonSimilarUsers = "recommended by similar users"
	reasonCategory     = "matches your interest in "
	reasonDepartment   = "located in "
	reasonDefault      = "popular in the region"
	reasonSeparator    = " · "
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	catalog         service.CatalogProvider
	profileRepo     repository.ProfileRepository
	interactionRepo repository.InteractionRepository
	metrics         service.EngineMetrics
	defaultLimit    int
	maxLimit        int
	similarUsers    int
	logger          *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	Catalog         service.CatalogProvider
	ProfileRepo     repository.ProfileRepository
	InteractionRepo repository.InteractionRepository
	Metrics         service.EngineMetrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	srv := &recommendationService{
		catalog:         params.Catalog,
		profileRepo:     params.ProfileRepo,
		interactionRepo: params.InteractionRepo,
		metrics:         params.Metrics,
		defaultLimit:    10,
		maxLimit:        50,
		similarUsers:    3,
		logger:          params.Logger,
	}
	if srv.metrics == nil {
		srv.metrics = service.NopMetrics{}
	}
	if params.Config != nil && params.Config.Recommendation != nil {
		rc := params.Config.Recommendation
		if rc.DefaultLimit > 0 {
			srv.defaultLimit = rc.DefaultLimit
		}
		if rc.MaxLimit > 0 {
			srv.maxLimit = rc.MaxLimit
		}
		if rc.SimilarUsers > 0 {
			srv.similarUsers = rc.SimilarUsers
		}
	}

	return srv
}

// recommendationInputs is the read set of one pass. The reads are not taken
// from a single snapshot; staleness between them is tolerated.
type recommendationInputs struct {
	catalog      []*entity.Destination
	others       []*entity.UserProfile
	interactions []*entity.Interaction
	likes        []*entity.Interaction
}

// candidate is a destination selected by one or more branches.
type candidate struct {
	dest     *entity.Destination
	sources  []entity.Source
	count    int
	position int
}

// Recommend runs the hybrid pass: collaborative filtering over similar profiles,
// content scoring over the catalog, and a popularity fallback when both are empty.
func (srv *recommendationService) Recommend(ctx context.Context, userID string, limit int) (*entity.RecommendationResult, error) {
	start := time.Now()
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	limit = clampLimit(limit, srv.defaultLimit, srv.maxLimit)

	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WithDetails(userID)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	in, err := srv.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(in.interactions))
	for _, it := range in.interactions {
		excluded[it.DestinationID] = struct{}{}
	}

	catalogIndex := make(map[string]int, len(in.catalog))
	for i, d := range in.catalog {
		if _, dup := catalogIndex[d.ID]; !dup {
			catalogIndex[d.ID] = i
		}
	}

	collaborative := srv.collaborativeCandidates(profile, in, excluded)
	content := contentCandidates(profile, in.catalog, catalogIndex, excluded, limit)

	strategy := entity.StrategyHybrid
	selected := mergeCandidates(in.catalog, catalogIndex, collaborative, content, limit)
	if len(selected) == 0 {
		strategy = entity.StrategyPopularityFallback
		selected, err = srv.popularityCandidates(ctx, in.catalog, catalogIndex, excluded, limit)
		if err != nil {
			return nil, err
		}
	}

	result := &entity.RecommendationResult{
		UserID:      userID,
		Strategy:    strategy,
		Items:       make([]*entity.Recommendation, 0, len(selected)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, c := range selected {
		result.Items = append(result.Items, explain(c, profile))
	}

	srv.metrics.ObserveRecommendation(strategy, len(result.Items), time.Since(start))
	logger.Debug("Recommendations computed",
		slog.String("userID", userID),
		slog.String("strategy", string(strategy)),
		slog.Int("collaborative", len(collaborative)),
		slog.Int("content", len(content)),
		slog.Int("returned", len(result.Items)),
	)

	return result, nil
}

func (srv *recommendationService) load(ctx context.Context, userID string) (*recommendationInputs, error) {
	in := &recommendationInputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		destinations, err := srv.catalog.ListDestinations(gctx, service.RegionFilter{})
		if err != nil {
			return asCatalogUnavailable(err)
		}
		in.catalog = destinations

		return nil
	})
	g.Go(func() error {
		others, err := srv.profileRepo.List(gctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		in.others = others

		return nil
	})
	g.Go(func() error {
		interactions, err := srv.interactionRepo.List(gctx, repository.InteractionFilter{UserID: userID})
		if err != nil {
			return errors.Wrap(err, "failed to list user interactions")
		}
		in.interactions = interactions

		return nil
	})
	g.Go(func() error {
		likes, err := srv.interactionRepo.List(gctx, repository.InteractionFilter{Actions: []entity.Action{entity.ActionLike}})
		if err != nil {
			return errors.Wrap(err, "failed to list likes")
		}
		in.likes = likes

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return in, nil
}

// asCatalogUnavailable keeps application errors and maps anything else to an unavailable catalog.
func asCatalogUnavailable(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.WithStack(domainerrors.ErrCatalogUnavailable.WithDetails(err.Error()))
}

type similarUser struct {
	id    string
	score int
}

// collaborativeCandidates returns destinations liked by the most similar users,
// ordered by the summed similarity of the users who liked them, first seen first on ties.
func (srv *recommendationService) collaborativeCandidates(
	profile *entity.UserProfile,
	in *recommendationInputs,
	excluded map[string]struct{},
) []string {
	similar := make([]similarUser, 0, len(in.others))
	for _, other := range in.others {
		if other.ID == profile.ID {
			continue
		}
		if score := scoring.Similarity(profile, other); score > 0 {
			similar = append(similar, similarUser{id: other.ID, score: score})
		}
	}
	sort.SliceStable(similar, func(i, j int) bool { return similar[i].score > similar[j].score })
	if len(similar) > srv.similarUsers {
		similar = similar[:srv.similarUsers]
	}
	if len(similar) == 0 {
		return nil
	}

	weights := make(map[string]int, len(similar))
	for _, u := range similar {
		weights[u.id] = u.score
	}

	type pair struct{ user, dest string }
	seen := make(map[pair]struct{})
	totals := make(map[string]int)
	var order []string
	for _, like := range in.likes {
		w, ok := weights[like.UserID]
		if !ok {
			continue
		}
		if _, skip := excluded[like.DestinationID]; skip {
			continue
		}
		p := pair{like.UserID, like.DestinationID}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, known := totals[like.DestinationID]; !known {
			order = append(order, like.DestinationID)
		}
		totals[like.DestinationID] += w
	}

	sort.SliceStable(order, func(i, j int) bool { return totals[order[i]] > totals[order[j]] })

	return order
}

type scoredDestination struct {
	id    string
	score int
}

// contentCandidates scores every catalog destination not yet interacted with and
// keeps the best limit with a positive score, catalog order on ties.
func contentCandidates(
	profile *entity.UserProfile,
	catalog []*entity.Destination,
	catalogIndex map[string]int,
	excluded map[string]struct{},
	limit int,
) []string {
	scored := make([]scoredDestination, 0, len(catalog))
	for i, d := range catalog {
		if catalogIndex[d.ID] != i {
			continue
		}
		if _, skip := excluded[d.ID]; skip {
			continue
		}
		if score := scoring.ContentScore(d, profile); score > 0 {
			scored = append(scored, scoredDestination{id: d.ID, score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	ids := make([]string, len(scored))
	for i, s := range scored {
		ids[i] = s.id
	}

	return ids
}

// mergeCandidates puts collaborative candidates ahead of content candidates,
// removes duplicates and truncates to limit. Collaborative IDs missing from the
// catalog snapshot are dropped.
func mergeCandidates(
	catalog []*entity.Destination,
	catalogIndex map[string]int,
	collaborative, content []string,
	limit int,
) []*candidate {
	byID := make(map[string]*candidate)
	merged := make([]*candidate, 0, limit)

	add := func(id string, source entity.Source) {
		if c, ok := byID[id]; ok {
			c.sources = append(c.sources, source)

			return
		}
		pos, ok := catalogIndex[id]
		if !ok {
			return
		}
		c := &candidate{dest: catalog[pos], sources: []entity.Source{source}, position: pos}
		byID[id] = c
		merged = append(merged, c)
	}

	for _, id := range collaborative {
		add(id, entity.SourceCollaborative)
	}
	for _, id := range content {
		add(id, entity.SourceContent)
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}

// popularityCandidates ranks the catalog by like and view counts, then fills the
// remaining slots with uninteracted destinations in catalog order.
func (srv *recommendationService) popularityCandidates(
	ctx context.Context,
	catalog []*entity.Destination,
	catalogIndex map[string]int,
	excluded map[string]struct{},
	limit int,
) ([]*candidate, error) {
	counts, err := srv.interactionRepo.CountByDestination(ctx, []entity.Action{entity.ActionLike, entity.ActionView})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count interactions")
	}

	ranked := make([]*candidate, 0, len(counts))
	taken := make(map[string]struct{}, len(counts))
	for _, dc := range counts {
		pos, ok := catalogIndex[dc.DestinationID]
		if !ok || dc.Count <= 0 {
			continue
		}
		if _, skip := excluded[dc.DestinationID]; skip {
			continue
		}
		taken[dc.DestinationID] = struct{}{}
		ranked = append(ranked, &candidate{
			dest:     catalog[pos],
			sources:  []entity.Source{entity.SourcePopularity},
			count:    dc.Count,
			position: pos,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}

		return ranked[i].position < ranked[j].position
	})

	for i, d := range catalog {
		if len(ranked) >= limit {
			break
		}
		if catalogIndex[d.ID] != i {
			continue
		}
		if _, skip := excluded[d.ID]; skip {
			continue
		}
		if _, dup := taken[d.ID]; dup {
			continue
		}
		ranked = append(ranked, &candidate{dest: d, sources: []entity.Source{entity.SourcePopularity}, position: i})
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// explain annotates a copy of the candidate's destination and assembles its reason.
func explain(c *candidate, profile *entity.UserProfile) *entity.Recommendation {
	match := scoring.ScoreContent(c.dest, profile)

	var parts []string
	for _, s := range c.sources {
		if s == entity.SourceCollaborative {
			parts = append(parts, reasonSimilarUsers)

			break
		}
	}
	if len(match.MatchedCategories) > 0 {
		parts = append(parts, reasonCategory+match.MatchedCategories[0])
	}
	if match.MatchedDepartment != "" {
		parts = append(parts, reasonDepartment+scoring.DepartmentDisplay(match.MatchedDepartment))
	}

	reason := reasonDefault
	if len(parts) > 0 {
		reason = strings.Join(parts, reasonSeparator)
	}

	annotated := scoring.Annotate(c.dest)
	annotated.Reason = reason
	annotated.InteractionCount = c.count

	return &entity.Recommendation{
		Destination:  annotated,
		Sources:      c.sources,
		ContentScore: match.Score,
		Reason:       reason,
	}
}
