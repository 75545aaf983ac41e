// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"destinos/internal/domain/entity"
)

// RecommendationUsecase produces personalized destination lists.
type RecommendationUsecase interface {
	// Recommend returns up to limit destinations the user has not interacted with yet.
	// A non-positive limit selects the configured default; larger limits are capped.
	Recommend(ctx context.Context, userID string, limit int) (*entity.RecommendationResult, error)
}
