// Package handler contains the HTTP handlers for the engine API.
package handler

import (
	"net/http"
	"strconv"

	"destinos/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"}, "Service is healthy")
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return v, true
}

// bindAndValidate binds the body into req and runs struct validation.
// It writes the error response itself and reports whether the handler should continue.
func bindAndValidate(c echo.Context, req any, bindMessage string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", bindMessage)
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err.Error())
	}

	return true, nil
}

func invalidQuery(c echo.Context, name string) error {
	return response.ValidationError(c, name+" must be an integer")
}
