// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"destinos/internal/domain/entity"
)

// ErrProfileNotFound is returned when no preferences were saved for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores user preference profiles.
type ProfileRepository interface {
	// FindByID retrieves a single profile by user ID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// List returns all profiles in insertion order, skipping excludeID when it is not empty.
	List(ctx context.Context, excludeID string) ([]*entity.UserProfile, error)

	// Upsert replaces the profile keyed by its ID, creating it on first save.
	Upsert(ctx context.Context, profile *entity.UserProfile) error

	// Count returns the number of stored profiles.
	Count(ctx context.Context) (int64, error)
}
