package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/delivery/http/response"
	"destinos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RewardHandler serves the reward catalog, redemptions and vouchers.
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler
func NewRewardHandler(rewardUC usecase.RewardUsecase, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{rewardUC: rewardUC, logger: logger}
}

// RedeemRequest names the user spending points.
type RedeemRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// CreateRewardRequest adds a reward to the catalog.
type CreateRewardRequest struct {
	ID             string     `json:"id"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	PointsRequired int        `json:"points_required" validate:"gt=0"`
	Category       string     `json:"category"`
	PartnerName    string     `json:"partner_name"`
	PartnerContact string     `json:"partner_contact"`
	MaxRedemptions *int       `json:"max_redemptions" validate:"omitempty,gte=0"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// ListRewards handles GET /api/rewards. Only active rewards are listed unless active=false.
func (h *RewardHandler) ListRewards(c echo.Context) error {
	activeOnly := true
	if raw := c.QueryParam("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return response.ValidationError(c, "active must be a boolean")
		}
		activeOnly = v
	}

	rewards, err := h.rewardUC.ListRewards(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rewards, "")
}

// Redeem handles POST /api/rewards/:rewardId/redeem
func (h *RewardHandler) Redeem(c echo.Context) error {
	var req RedeemRequest
	if ok, err := bindAndValidate(c, &req, "Invalid redemption input"); !ok {
		return err
	}

	redemption, err := h.rewardUC.Redeem(c.Request().Context(), req.UserID, c.Param("rewardId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, redemption, "Reward redeemed successfully")
}

// GetRedemption handles GET /api/redemptions/:id
func (h *RewardHandler) GetRedemption(c echo.Context) error {
	redemption, err := h.rewardUC.GetRedemption(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemption, "")
}

// GetVoucher handles GET /api/redemptions/:id/voucher and returns the QR code as PNG.
func (h *RewardHandler) GetVoucher(c echo.Context) error {
	voucher, err := h.rewardUC.Voucher(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Voucher-Code", voucher.Redemption.VoucherCode)

	return c.Blob(http.StatusOK, "image/png", voucher.PNG)
}

// CreateReward handles POST /api/admin/rewards
func (h *RewardHandler) CreateReward(c echo.Context) error {
	var req CreateRewardRequest
	if ok, err := bindAndValidate(c, &req, "Invalid reward input"); !ok {
		return err
	}

	ctx := c.Request().Context()
	reward, err := h.rewardUC.CreateReward(ctx, usecase.CreateRewardInput{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Category:       req.Category,
		PartnerName:    req.PartnerName,
		PartnerContact: req.PartnerContact,
		MaxRedemptions: req.MaxRedemptions,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	operatorID, _ := deliverycontext.GetOperatorID(c)
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Reward created",
		slog.String("rewardID", reward.ID),
		slog.String("operatorID", operatorID),
	)

	return response.Success(c, http.StatusCreated, reward, "Reward created")
}
