package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/repository"
	"destinos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// interactionService implements the InteractionUsecase interface.
type interactionService struct {
	interactionRepo repository.InteractionRepository
	points          usecase.PointsUsecase
	logger          *slog.Logger
}

// NewInteractionService is the constructor for interactionService.
func NewInteractionService(
	interactionRepo repository.InteractionRepository,
	points usecase.PointsUsecase,
	logger *slog.Logger,
) usecase.InteractionUsecase {
	return &interactionService{
		interactionRepo: interactionRepo,
		points:          points,
		logger:          logger,
	}
}

// TrackInteraction appends the interaction and then awards its points.
// The award is best effort: a ledger failure is logged and the interaction still counts.
func (srv *interactionService) TrackInteraction(ctx context.Context, input usecase.TrackInteractionInput) (*entity.Interaction, error) {
	if strings.TrimSpace(input.UserID) == "" || strings.TrimSpace(input.DestinationID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id and destination_id are required")
	}
	if !input.Action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown action " + input.Action.String())
	}
	if input.SavePoints < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points must not be negative")
	}

	interaction := &entity.Interaction{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		DestinationID: input.DestinationID,
		Action:        input.Action,
		Timestamp:     time.Now().UTC(),
	}
	if err := srv.interactionRepo.Append(ctx, interaction); err != nil {
		return nil, errors.Wrap(err, "failed to record interaction")
	}

	srv.award(ctx, interaction, input.SavePoints)

	return interaction, nil
}

func (srv *interactionService) award(ctx context.Context, interaction *entity.Interaction, savePoints int) {
	points, txType, fixed := entity.PointsForAction(interaction.Action)
	if !fixed {
		if interaction.Action != entity.ActionSave || savePoints == 0 {
			return
		}
		points = savePoints
	}

	refID := interaction.DestinationID
	_, err := srv.points.Credit(ctx, usecase.CreditInput{
		UserID:      interaction.UserID,
		Points:      points,
		Type:        txType,
		Description: "Interacción: " + interaction.Action.String(),
		ReferenceID: &refID,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to award interaction points",
			slog.String("userID", interaction.UserID),
			slog.String("action", interaction.Action.String()),
			slog.Any("error", err),
		)
	}
}
