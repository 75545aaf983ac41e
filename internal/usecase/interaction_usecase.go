package usecase

import (
	"context"

	"destinos/internal/domain/entity"
)

// TrackInteractionInput records one engagement event.
// SavePoints is the award for a save action and is ignored for other actions.
type TrackInteractionInput struct {
	UserID        string
	DestinationID string
	Action        entity.Action
	SavePoints    int
}

// InteractionUsecase appends interactions and triggers their point awards.
type InteractionUsecase interface {
	TrackInteraction(ctx context.Context, input TrackInteractionInput) (*entity.Interaction, error)
}
