package usecase

import (
	"context"

	"destinos/internal/domain/entity"
)

// DestinationFilter narrows a catalog listing.
type DestinationFilter struct {
	Department string
	Category   string
	Limit      int
}

// SubmitDestinationInput is a destination proposed by a user.
type SubmitDestinationInput struct {
	UserID       string
	Name         string
	Category     string
	Department   string
	Municipality string
	Description  string
}

// DestinationUsecase lists catalog destinations and moderates user submissions.
type DestinationUsecase interface {
	ListDestinations(ctx context.Context, filter DestinationFilter) ([]*entity.Destination, error)

	SubmitDestination(ctx context.Context, input SubmitDestinationInput) (*entity.DestinationSubmission, error)
	ApproveSubmission(ctx context.Context, submissionID string) (*entity.DestinationSubmission, error)
	RejectSubmission(ctx context.Context, submissionID string) (*entity.DestinationSubmission, error)
	ListSubmissions(ctx context.Context, status entity.SubmissionStatus) ([]*entity.DestinationSubmission, error)
}
