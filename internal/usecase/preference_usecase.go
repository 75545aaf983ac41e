package usecase

import (
	"context"

	"destinos/internal/domain/entity"
)

// SavePreferencesInput replaces a user's profile. An empty UserID creates a new user.
type SavePreferencesInput struct {
	UserID               string
	Name                 string
	Email                string
	PreferredCategories  []string
	PreferredDepartments []string
	AgeRange             string
	TravelStyle          string
}

// PreferenceUsecase stores stated travel preferences.
type PreferenceUsecase interface {
	// SavePreferences upserts the full profile and returns the user ID.
	SavePreferences(ctx context.Context, input SavePreferencesInput) (string, error)
	GetPreferences(ctx context.Context, userID string) (*entity.UserProfile, error)
}
