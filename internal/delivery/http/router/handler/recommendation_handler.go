package handler

import (
	"net/http"

	"destinos/internal/delivery/http/response"
	"destinos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RecommendationHandler serves personalized destination lists.
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(recommendationUC usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommendationUC: recommendationUC}
}

// GetRecommendations handles GET /api/recommendations/:userId
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return invalidQuery(c, "limit")
	}

	result, err := h.recommendationUC.Recommend(c.Request().Context(), c.Param("userId"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}
