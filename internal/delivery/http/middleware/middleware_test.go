package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"destinos/internal/delivery/http/response"
	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/service"
	mockSvc "destinos/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServer(t *testing.T, tokens *mockSvc.MockTokenService) *echo.Echo {
	t.Helper()

	auth := NewAuthMiddleware(tokens)
	e := echo.New()
	group := e.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	group.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	return e
}

func doAdmin(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		rec := doAdmin(newAdminServer(t, mockSvc.NewMockTokenService(t)), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec := doAdmin(newAdminServer(t, mockSvc.NewMockTokenService(t)), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		rec := doAdmin(newAdminServer(t, tokens), "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing admin role", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("user-token").Return(&service.Claims{Subject: "ops-1", Roles: []string{"user"}}, nil)

		rec := doAdmin(newAdminServer(t, tokens), "Bearer user-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("admin passes", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("admin-token").Return(&service.Claims{Subject: "ops-1", Roles: []string{"admin"}}, nil)

		rec := doAdmin(newAdminServer(t, tokens), "Bearer admin-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestErrorMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "app error",
			err:      errors.Wrap(domainerrors.ErrRewardNotFound, "redeem"),
			wantCode: http.StatusNotFound,
			wantErr:  "REWARD_NOT_FOUND",
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantCode: http.StatusMethodNotAllowed,
			wantErr:  "HTTP_ERROR",
		},
		{
			name: "unreachable store",
			err: errors.Wrap(domainerrors.NewStoreError(
				domainerrors.ErrStoreUnavailable,
				errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"),
				"failed to begin transaction",
			), "failed to redeem reward"),
			wantCode: http.StatusServiceUnavailable,
			wantErr:  "STORE_UNAVAILABLE",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
			e.GET("/", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, errorCode(t, rec))
		})
	}
}
