package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"destinos/config"
	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/domain/service"
	"destinos/internal/infra/persistence/memory"
	mockSvc "destinos/internal/mocks/service"
	"destinos/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// engineFixtures wires every service over one memory store, a mocked catalog and a silent publisher.
type engineFixtures struct {
	store     *memory.Store
	catalog   *mockSvc.MockCatalogProvider
	publisher *mockSvc.MockEventPublisher
	voucher   *mockSvc.MockVoucherService

	points          usecase.PointsUsecase
	rewards         usecase.RewardUsecase
	preferences     usecase.PreferenceUsecase
	interactions    usecase.InteractionUsecase
	recommendations usecase.RecommendationUsecase
	destinations    usecase.DestinationUsecase
	analytics       usecase.AnalyticsUsecase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog:        &config.CatalogConfig{DefaultLimit: 50},
		Recommendation: &config.RecommendationConfig{DefaultLimit: 10, MaxLimit: 50, SimilarUsers: 3},
	}
}

func createEngine(t *testing.T, catalog []*entity.Destination) engineFixtures {
	t.Helper()

	store := memory.NewStore()
	logger := discardLogger()
	cfg := testConfig()

	catalogMock := mockSvc.NewMockCatalogProvider(t)
	if catalog != nil {
		catalogMock.EXPECT().ListDestinations(mock.Anything, mock.Anything).Return(catalog, nil).Maybe()
	}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	voucher := mockSvc.NewMockVoucherService(t)
	voucher.EXPECT().NewCode().Return("DST-TEST01").Maybe()

	profileRepo := memory.NewProfileRepository(store)
	interactionRepo := memory.NewInteractionRepository(store)
	pointsRepo := memory.NewPointsRepository(store)
	txManager := memory.NewTransactionManager(store)

	points := NewPointsService(PointsServiceParams{
		PointsRepo: pointsRepo,
		Publisher:  publisher,
		Metrics:    service.NopMetrics{},
		Logger:     logger,
	})

	return engineFixtures{
		store:     store,
		catalog:   catalogMock,
		publisher: publisher,
		voucher:   voucher,
		points:    points,
		rewards: NewRewardService(RewardServiceParams{
			TxManager:      txManager,
			RewardRepo:     memory.NewRewardRepository(store),
			RedemptionRepo: memory.NewRedemptionRepository(store),
			VoucherService: voucher,
			Publisher:      publisher,
			Metrics:        service.NopMetrics{},
			Logger:         logger,
		}),
		preferences:  NewPreferenceService(profileRepo, publisher, logger),
		interactions: NewInteractionService(interactionRepo, points, logger),
		recommendations: NewRecommendationService(RecommendationServiceParams{
			Catalog:         catalogMock,
			ProfileRepo:     profileRepo,
			InteractionRepo: interactionRepo,
			Metrics:         service.NopMetrics{},
			Config:          cfg,
			Logger:          logger,
		}),
		destinations: NewDestinationService(DestinationServiceParams{
			TxManager:      txManager,
			Catalog:        catalogMock,
			SubmissionRepo: memory.NewSubmissionRepository(store),
			Points:         points,
			Publisher:      publisher,
			Config:         cfg,
			Logger:         logger,
		}),
		analytics: NewAnalyticsService(catalogMock, profileRepo, interactionRepo, logger),
	}
}

func (fx engineFixtures) savePrefs(t *testing.T, input usecase.SavePreferencesInput) string {
	t.Helper()

	id, err := fx.preferences.SavePreferences(context.Background(), input)
	require.NoError(t, err)

	return id
}

func (fx engineFixtures) track(t *testing.T, userID, destinationID string, action entity.Action) {
	t.Helper()

	_, err := fx.interactions.TrackInteraction(context.Background(), usecase.TrackInteractionInput{
		UserID:        userID,
		DestinationID: destinationID,
		Action:        action,
	})
	require.NoError(t, err)
}

func (fx engineFixtures) balance(t *testing.T, userID string) int {
	t.Helper()

	total, err := fx.points.Balance(context.Background(), userID)
	require.NoError(t, err)

	return total
}

func intPtr(v int) *int { return &v }

// sampleCatalog is a small registry extract in catalog order.
func sampleCatalog() []*entity.Destination {
	return []*entity.Destination{
		{ID: "d1", Name: "Hotel Plaza Mayor", Category: "ALOJAMIENTO HOTELERO", Department: "BOYACA", Municipality: "VILLA DE LEYVA"},
		{ID: "d2", Name: "Finca El Roble", Category: "ALOJAMIENTO RURAL", Department: "CUNDINAMARCA", Municipality: "LA VEGA"},
		{ID: "d3", Name: "Viajes Altiplano", Category: "AGENCIA DE VIAJES", Department: "BOYACA", Municipality: "TUNJA"},
		{ID: "d4", Name: "Guías Muiscas", Category: "GUÍA DE TURISMO", Department: "CUNDINAMARCA", Municipality: "GUATAVITA"},
		{ID: "d5", Name: "Transportes Sabana", Category: "TRANSPORTE TURÍSTICO", Department: "CUNDINAMARCA", Municipality: "ZIPAQUIRA"},
		{ID: "d6", Name: "Hostal Lago Tota", Category: "ALOJAMIENTO HOTELERO", Department: "BOYACÁ", Municipality: "AQUITANIA"},
	}
}

func memoryRewardRepo(fx engineFixtures) repository.RewardRepository {
	return memory.NewRewardRepository(fx.store)
}

func memoryInteractionRepo(fx engineFixtures) repository.InteractionRepository {
	return memory.NewInteractionRepository(fx.store)
}
