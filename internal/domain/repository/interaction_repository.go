package repository

import (
	"context"

	"destinos/internal/domain/entity"
)

// InteractionFilter narrows an interaction listing. Zero values mean "any".
type InteractionFilter struct {
	UserID  string
	Actions []entity.Action
}

// DestinationCount pairs a destination with how many matching interactions it received.
type DestinationCount struct {
	DestinationID string
	Count         int
}

// InteractionRepository is the append-only interaction log.
type InteractionRepository interface {
	// Append records a new interaction.
	Append(ctx context.Context, interaction *entity.Interaction) error

	// List returns interactions matching the filter, oldest first.
	List(ctx context.Context, filter InteractionFilter) ([]*entity.Interaction, error)

	// CountByDestination groups interactions with one of the given actions by destination,
	// most interacted first.
	CountByDestination(ctx context.Context, actions []entity.Action) ([]DestinationCount, error)

	// Count returns the total number of interactions.
	Count(ctx context.Context) (int64, error)
}
