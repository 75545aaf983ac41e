package repository

import (
	"context"
	"errors"
	"time"

	"destinos/internal/domain/entity"
)

// ErrSubmissionNotFound is returned when a destination submission does not exist.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRepository stores user-submitted destinations awaiting moderation.
type SubmissionRepository interface {
	// Create stores a new submission.
	Create(ctx context.Context, submission *entity.DestinationSubmission) error

	// FindByID retrieves a submission.
	FindByID(ctx context.Context, id string) (*entity.DestinationSubmission, error)

	// UpdateStatus moves a pending submission to status. It reports false when the
	// submission was no longer pending.
	UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus, reviewedAt time.Time) (bool, error)

	// List returns submissions, filtered by status unless it is empty, oldest first.
	List(ctx context.Context, status entity.SubmissionStatus) ([]*entity.DestinationSubmission, error)
}
