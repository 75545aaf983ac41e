package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "destinos/internal/delivery/context"
	domainerrors "destinos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"user_id": "u1"}, ""))

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Success", body.Message)
	assert.Equal(t, "req-1", body.RequestID)
	assert.Nil(t, body.Error)
}

func TestHandleAppError(t *testing.T) {
	t.Run("domain error keeps client details", func(t *testing.T) {
		c, rec := newContext()
		err := errors.Wrap(domainerrors.ErrInsufficientBalance.WithDetails("balance 9, required 15"), "redeem")

		require.NoError(t, HandleAppError(c, err))

		body := decode(t, rec)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "INSUFFICIENT_BALANCE", body.Error.Code)
		assert.Equal(t, "balance 9, required 15", body.Error.Details)
	})

	t.Run("server errors hide details", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrCatalogUnavailable.WithDetails("dial tcp: refused")))

		body := decode(t, rec)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, body.Error.Details)
	})

	t.Run("unknown errors are returned", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.New("boom"))

		require.Error(t, err)
		assert.Equal(t, 0, rec.Body.Len())
	})
}
