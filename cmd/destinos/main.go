package main

import (
	"context"
	"log/slog"
	"os"

	"destinos/config"
	"destinos/internal/delivery"
	"destinos/internal/delivery/http"
	"destinos/internal/delivery/http/middleware"
	"destinos/internal/delivery/http/router/handler"
	"destinos/internal/domain/lifecycle"
	"destinos/internal/domain/service"
	"destinos/internal/infra/auth"
	"destinos/internal/infra/catalog"
	logs "destinos/internal/infra/log"
	"destinos/internal/infra/metrics"
	"destinos/internal/infra/persistence"
	"destinos/internal/infra/pubsub"
	"destinos/internal/infra/voucher"
	"destinos/internal/usecase"
	"destinos/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedRewards,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
		catalog.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newVoucherService,
		),
	)
}

// newVoucherService creates the QR voucher renderer from config
func newVoucherService(cfg *config.Config) service.VoucherService {
	return voucher.NewQRCodeService(cfg.Voucher.Size, cfg.Voucher.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPointsService,
			impl.NewRewardService,
			impl.NewPreferenceService,
			impl.NewInteractionService,
			impl.NewRecommendationService,
			impl.NewDestinationService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDestinationHandler,
			handler.NewRecommendationHandler,
			handler.NewAnalyticsHandler,
			handler.NewRewardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedRewards creates the configured rewards once the store is up. Existing IDs are left untouched.
func seedRewards(params seedParams) {
	inputs := rewardSeedInputs(params.Config.Rewards)
	if len(inputs) == 0 {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			created, err := params.RewardUC.SeedRewards(ctx, inputs)
			if err != nil {
				return err
			}
			params.Logger.Info("Reward catalog seeded",
				slog.Int("configured", len(inputs)),
				slog.Int("created", created),
			)

			return nil
		},
	})
}

func rewardSeedInputs(cfg *config.RewardsConfig) []usecase.CreateRewardInput {
	if cfg == nil {
		return nil
	}

	inputs := make([]usecase.CreateRewardInput, 0, len(cfg.Seed))
	for _, seed := range cfg.Seed {
		inputs = append(inputs, usecase.CreateRewardInput{
			ID:             seed.ID,
			Title:          seed.Title,
			Description:    seed.Description,
			PointsRequired: seed.PointsRequired,
			Category:       seed.Category,
			PartnerName:    seed.PartnerName,
			PartnerContact: seed.PartnerContact,
			MaxRedemptions: seed.MaxRedemptions,
			ExpiresAt:      seed.ExpiresAt,
		})
	}

	return inputs
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
