package handler

import (
	"net/http"

	"destinos/internal/delivery/http/response"
	"destinos/internal/domain/entity"
	"destinos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	PreferenceUC  usecase.PreferenceUsecase
	InteractionUC usecase.InteractionUsecase
	PointsUC      usecase.PointsUsecase
	RewardUC      usecase.RewardUsecase
}

// UserHandler serves preferences, interactions and the points wallet of a user.
type UserHandler struct {
	preferenceUC  usecase.PreferenceUsecase
	interactionUC usecase.InteractionUsecase
	pointsUC      usecase.PointsUsecase
	rewardUC      usecase.RewardUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		preferenceUC:  params.PreferenceUC,
		interactionUC: params.InteractionUC,
		pointsUC:      params.PointsUC,
		rewardUC:      params.RewardUC,
	}
}

// SavePreferencesRequest is a full preferences replace. An empty id registers a new user.
type SavePreferencesRequest struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name" validate:"required"`
	Email                string   `json:"email" validate:"omitempty,email"`
	PreferredCategories  []string `json:"preferred_categories"`
	PreferredDepartments []string `json:"preferred_departments"`
	AgeRange             string   `json:"age_range"`
	TravelStyle          string   `json:"travel_style"`
}

// TrackInteractionRequest records one engagement event.
type TrackInteractionRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	DestinationID string `json:"destination_rnt" validate:"required"`
	Action        string `json:"action" validate:"required,oneof=view like save"`
	Points        int    `json:"points" validate:"gte=0"`
}

// SavePreferences handles POST /api/users/preferences
func (h *UserHandler) SavePreferences(c echo.Context) error {
	var req SavePreferencesRequest
	if ok, err := bindAndValidate(c, &req, "Invalid preferences input"); !ok {
		return err
	}

	userID, err := h.preferenceUC.SavePreferences(c.Request().Context(), usecase.SavePreferencesInput{
		UserID:               req.ID,
		Name:                 req.Name,
		Email:                req.Email,
		PreferredCategories:  req.PreferredCategories,
		PreferredDepartments: req.PreferredDepartments,
		AgeRange:             req.AgeRange,
		TravelStyle:          req.TravelStyle,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": userID}, "Preferences saved successfully")
}

// GetPreferences handles GET /api/users/:userId/preferences
func (h *UserHandler) GetPreferences(c echo.Context) error {
	profile, err := h.preferenceUC.GetPreferences(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// TrackInteraction handles POST /api/users/interactions
func (h *UserHandler) TrackInteraction(c echo.Context) error {
	var req TrackInteractionRequest
	if ok, err := bindAndValidate(c, &req, "Invalid interaction input"); !ok {
		return err
	}

	interaction, err := h.interactionUC.TrackInteraction(c.Request().Context(), usecase.TrackInteractionInput{
		UserID:        req.UserID,
		DestinationID: req.DestinationID,
		Action:        entity.Action(req.Action),
		SavePoints:    req.Points,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, interaction, "Interaction tracked successfully")
}

// GetPoints handles GET /api/users/:userId/points
func (h *UserHandler) GetPoints(c echo.Context) error {
	summary, err := h.pointsUC.Summary(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// GetTransactions handles GET /api/users/:userId/points/transactions
func (h *UserHandler) GetTransactions(c echo.Context) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return invalidQuery(c, "limit")
	}

	txns, err := h.pointsUC.History(c.Request().Context(), c.Param("userId"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, txns, "")
}

// GetRedemptions handles GET /api/users/:userId/redemptions
func (h *UserHandler) GetRedemptions(c echo.Context) error {
	redemptions, err := h.rewardUC.ListRedemptions(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemptions, "")
}
