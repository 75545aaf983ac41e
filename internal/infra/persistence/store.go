// Package persistence selects the store backing the engine's repositories.
package persistence

import (
	"log/slog"

	"destinos/config"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/metrics"
	"destinos/internal/infra/persistence/memory"
	"destinos/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Registry metrics.Registry
}

// Repositories exposes every repository of the configured driver to the graph.
type Repositories struct {
	fx.Out

	ProfileRepo     repository.ProfileRepository
	InteractionRepo repository.InteractionRepository
	PointsRepo      repository.PointsRepository
	RewardRepo      repository.RewardRepository
	RedemptionRepo  repository.RedemptionRepository
	SubmissionRepo  repository.SubmissionRepository
	TxManager       repository.TransactionManager
}

// NewRepositories builds the repositories for config.Store.Driver.
func NewRepositories(params StoreParams) (Repositories, error) {
	driver := config.StoreDriverMemory
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			ProfileRepo:     memory.NewProfileRepository(store),
			InteractionRepo: memory.NewInteractionRepository(store),
			PointsRepo:      memory.NewPointsRepository(store),
			RewardRepo:      memory.NewRewardRepository(store),
			RedemptionRepo:  memory.NewRedemptionRepository(store),
			SubmissionRepo:  memory.NewSubmissionRepository(store),
			TxManager:       memory.NewTransactionManager(store),
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
			Registry:  params.Registry,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL store")

		return Repositories{
			ProfileRepo:     postgres.NewProfileRepository(db),
			InteractionRepo: postgres.NewInteractionRepository(db),
			PointsRepo:      postgres.NewPointsRepository(db),
			RewardRepo:      postgres.NewRewardRepository(db),
			RedemptionRepo:  postgres.NewRedemptionRepository(db),
			SubmissionRepo:  postgres.NewSubmissionRepository(db),
			TxManager:       postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the repositories and transaction manager.
var Module = fx.Options( //nolint:gochecknoglobals
	fx.Provide(NewRepositories),
)
