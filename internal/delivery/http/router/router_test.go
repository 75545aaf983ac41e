package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"destinos/config"
	httpmiddleware "destinos/internal/delivery/http/middleware"
	"destinos/internal/delivery/http/response"
	"destinos/internal/delivery/http/router/handler"
	"destinos/internal/delivery/http/validator"
	"destinos/internal/domain/entity"
	"destinos/internal/domain/service"
	"destinos/internal/infra/metrics"
	"destinos/internal/infra/persistence/memory"
	"destinos/internal/infra/voucher"
	mockSvc "destinos/internal/mocks/service"
	"destinos/internal/usecase"
	"destinos/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo    *echo.Echo
	rewards usecase.RewardUsecase
}

func testCatalog() []*entity.Destination {
	return []*entity.Destination{
		{ID: "rnt-1", Name: "Hotel Plaza Mayor", Category: "ALOJAMIENTO HOTELERO", Department: "BOYACA", Municipality: "VILLA DE LEYVA"},
		{ID: "rnt-2", Name: "Finca El Roble", Category: "ALOJAMIENTO RURAL", Department: "CUNDINAMARCA", Municipality: "LA VEGA"},
		{ID: "rnt-3", Name: "Viajes Altiplano", Category: "AGENCIA DE VIAJES", Department: "BOYACÁ", Municipality: "TUNJA"},
	}
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Catalog:        &config.CatalogConfig{DefaultLimit: 50},
		Recommendation: &config.RecommendationConfig{DefaultLimit: 10, MaxLimit: 50, SimilarUsers: 3},
	}

	catalog := mockSvc.NewMockCatalogProvider(t)
	catalog.EXPECT().ListDestinations(mock.Anything, mock.Anything).Return(testCatalog(), nil).Maybe()
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("admin-token").Return(&service.Claims{Subject: "ops-1", Roles: []string{"admin"}}, nil).Maybe()

	registry := metrics.NewRegistry()
	engineMetrics := metrics.NewEngineMetrics(registry)

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	profileRepo := memory.NewProfileRepository(store)
	interactionRepo := memory.NewInteractionRepository(store)

	points := impl.NewPointsService(impl.PointsServiceParams{
		PointsRepo: memory.NewPointsRepository(store),
		Publisher:  publisher,
		Metrics:    engineMetrics,
		Logger:     logger,
	})
	rewards := impl.NewRewardService(impl.RewardServiceParams{
		TxManager:      txManager,
		RewardRepo:     memory.NewRewardRepository(store),
		RedemptionRepo: memory.NewRedemptionRepository(store),
		VoucherService: voucher.NewQRCodeService(256, "M"),
		Publisher:      publisher,
		Metrics:        engineMetrics,
		Logger:         logger,
	})
	destinations := impl.NewDestinationService(impl.DestinationServiceParams{
		TxManager:      txManager,
		Catalog:        catalog,
		SubmissionRepo: memory.NewSubmissionRepository(store),
		Points:         points,
		Publisher:      publisher,
		Config:         cfg,
		Logger:         logger,
	})
	recommendations := impl.NewRecommendationService(impl.RecommendationServiceParams{
		Catalog:         catalog,
		ProfileRepo:     profileRepo,
		InteractionRepo: interactionRepo,
		Metrics:         engineMetrics,
		Config:          cfg,
		Logger:          logger,
	})

	e := echo.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	NewRouter(RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			PreferenceUC:  impl.NewPreferenceService(profileRepo, publisher, logger),
			InteractionUC: impl.NewInteractionService(interactionRepo, points, logger),
			PointsUC:      points,
			RewardUC:      rewards,
		}),
		DestinationHandler:    handler.NewDestinationHandler(destinations),
		RecommendationHandler: handler.NewRecommendationHandler(recommendations),
		AnalyticsHandler:      handler.NewAnalyticsHandler(impl.NewAnalyticsService(catalog, profileRepo, interactionRepo, logger)),
		RewardHandler:         handler.NewRewardHandler(rewards, logger),
		AuthMiddleware:        httpmiddleware.NewAuthMiddleware(tokens),
		Registry:              registry,
	}).RegisterRoutes(e)

	return apiFixture{echo: e, rewards: rewards}
}

func (f apiFixture) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

// envelope decodes the response and re-decodes its data into out when given.
func envelope(t *testing.T, rec *httptest.ResponseRecorder, out any) response.Response {
	t.Helper()

	var raw struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}

	return raw.Response
}

func adminHeader() []string {
	return []string{echo.HeaderAuthorization, "Bearer admin-token"}
}

func TestRouter_Health(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/health", "/api/health"} {
		rec := f.do(t, http.MethodGet, path, nil)

		var data map[string]string
		body := envelope(t, rec, &data)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, body.Success)
		assert.Equal(t, "healthy", data["status"])
	}
}

func TestRouter_GamificationFlow(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/users/preferences", map[string]any{
		"name":                  "Ana",
		"email":                 "ana@example.com",
		"preferred_categories":  []string{"ALOJAMIENTO HOTELERO"},
		"preferred_departments": []string{"BOYACÁ"},
		"age_range":             "26-35",
		"travel_style":          "aventura",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var saved map[string]string
	envelope(t, rec, &saved)
	userID := saved["user_id"]
	require.NotEmpty(t, userID)

	for range 3 {
		rec = f.do(t, http.MethodPost, "/api/users/interactions", map[string]any{
			"user_id":         userID,
			"destination_rnt": "rnt-2",
			"action":          "like",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/api/users/"+userID+"/points", nil)
	var summary usecase.PointsSummary
	envelope(t, rec, &summary)
	assert.Equal(t, 9, summary.TotalPoints)
	assert.Equal(t, "Explorer", summary.Level.CurrentTier)
	assert.Equal(t, 41, summary.Level.PointsToNext)

	_, err := f.rewards.CreateReward(t.Context(), usecase.CreateRewardInput{
		ID: "cafe", Title: "Café de origen", PointsRequired: 15, MaxRedemptions: intPtr(5),
	})
	require.NoError(t, err)

	rec = f.do(t, http.MethodPost, "/api/rewards/cafe/redeem", map[string]string{"user_id": userID})
	body := envelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INSUFFICIENT_BALANCE", body.Error.Code)

	rec = f.do(t, http.MethodPost, "/api/destinations/submissions", map[string]string{
		"user_id":    userID,
		"name":       "Laguna de Iguaque",
		"category":   "ECOTURISMO",
		"department": "BOYACA",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var submission entity.DestinationSubmission
	envelope(t, rec, &submission)

	rec = f.do(t, http.MethodPost, "/api/admin/submissions/"+submission.ID+"/approve", nil, adminHeader()...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/rewards/cafe/redeem", map[string]string{"user_id": userID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var redemption entity.Redemption
	envelope(t, rec, &redemption)
	assert.Equal(t, 15, redemption.PointsSpent)

	rec = f.do(t, http.MethodGet, "/api/users/"+userID+"/points", nil)
	envelope(t, rec, &summary)
	assert.Equal(t, 9+5+15-15, summary.TotalPoints)

	rec = f.do(t, http.MethodGet, "/api/users/"+userID+"/points/transactions?limit=2", nil)
	var txns []*entity.PointTransaction
	envelope(t, rec, &txns)
	require.Len(t, txns, 2)
	assert.Equal(t, entity.TransactionRedeemReward, txns[0].Type)
	assert.Equal(t, -15, txns[0].Points)

	rec = f.do(t, http.MethodGet, "/api/redemptions/"+redemption.ID+"/voucher", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, redemption.VoucherCode, rec.Header().Get("X-Voucher-Code"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = f.do(t, http.MethodGet, "/api/users/"+userID+"/redemptions", nil)
	var redemptions []*entity.Redemption
	envelope(t, rec, &redemptions)
	require.Len(t, redemptions, 1)
	assert.Equal(t, redemption.ID, redemptions[0].ID)

	rec = f.do(t, http.MethodGet, "/api/recommendations/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result entity.RecommendationResult
	envelope(t, rec, &result)
	for _, item := range result.Items {
		assert.NotEqual(t, "rnt-2", item.Destination.ID)
	}

	rec = f.do(t, http.MethodGet, "/api/analytics/popular-destinations", nil)
	var popular []*entity.Destination
	envelope(t, rec, &popular)
	require.NotEmpty(t, popular)
	assert.Equal(t, "rnt-2", popular[0].ID)
	assert.Equal(t, 3, popular[0].InteractionCount)

	rec = f.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "destinos_redemptions_total")
}

func TestRouter_Errors(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		headers  []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown preferences",
			method:   http.MethodGet,
			path:     "/api/users/nobody/preferences",
			wantCode: http.StatusNotFound,
			wantErr:  "PROFILE_NOT_FOUND",
		},
		{
			name:     "recommendations for unknown user",
			method:   http.MethodGet,
			path:     "/api/recommendations/nobody",
			wantCode: http.StatusNotFound,
			wantErr:  "PROFILE_NOT_FOUND",
		},
		{
			name:     "non numeric limit",
			method:   http.MethodGet,
			path:     "/api/destinations?limit=ten",
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "unknown action",
			method:   http.MethodPost,
			path:     "/api/users/interactions",
			body:     map[string]string{"user_id": "u1", "destination_rnt": "rnt-1", "action": "share"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "redeem unknown reward",
			method:   http.MethodPost,
			path:     "/api/rewards/ghost/redeem",
			body:     map[string]string{"user_id": "u1"},
			wantCode: http.StatusNotFound,
			wantErr:  "REWARD_NOT_FOUND",
		},
		{
			name:     "admin route without token",
			method:   http.MethodGet,
			path:     "/api/admin/submissions",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "approve unknown submission",
			method:   http.MethodPost,
			path:     "/api/admin/submissions/ghost/approve",
			headers:  adminHeader(),
			wantCode: http.StatusNotFound,
			wantErr:  "SUBMISSION_NOT_FOUND",
		},
		{
			name:     "invalid reward",
			method:   http.MethodPost,
			path:     "/api/admin/rewards",
			body:     map[string]any{"title": "Gratis", "points_required": 0},
			headers:  adminHeader(),
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.path, tt.body, tt.headers...)

			body := envelope(t, rec, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestRouter_AdminCreatesAndListsRewards(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/admin/rewards", map[string]any{
		"id":              "tour",
		"title":           "Tour Guatavita",
		"points_required": 150,
		"max_redemptions": 20,
	}, adminHeader()...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/rewards", nil)
	var rewards []*entity.Reward
	envelope(t, rec, &rewards)
	require.Len(t, rewards, 1)
	assert.Equal(t, "tour", rewards[0].ID)
	assert.True(t, rewards[0].IsActive)

	rec = f.do(t, http.MethodGet, "/api/rewards?active=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func intPtr(v int) *int { return &v }
