package handler

import (
	"net/http"

	"destinos/internal/delivery/http/response"
	"destinos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves aggregate engagement reports.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// PopularDestinations handles GET /api/analytics/popular-destinations
func (h *AnalyticsHandler) PopularDestinations(c echo.Context) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return invalidQuery(c, "limit")
	}

	destinations, err := h.analyticsUC.PopularDestinations(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, destinations, "")
}

// Trends handles GET /api/analytics/trends
func (h *AnalyticsHandler) Trends(c echo.Context) error {
	trends, err := h.analyticsUC.Trends(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trends, "")
}
