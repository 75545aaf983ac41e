package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"destinos/config"
	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/entity"
	domainerrors "destinos/internal/domain/errors"
	"destinos/internal/domain/repository"
	"destinos/internal/domain/scoring"
	"destinos/internal/domain/service"
	"destinos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDestinationLimit = 50

// destinationService implements the DestinationUsecase interface.
type destinationService struct {
	txManager      repository.TransactionManager
	catalog        service.CatalogProvider
	submissionRepo repository.SubmissionRepository
	points         usecase.PointsUsecase
	publisher      service.EventPublisher
	defaultLimit   int
	logger         *slog.Logger
}

// DestinationServiceParams holds dependencies for DestinationService, injected by Fx.
type DestinationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Catalog        service.CatalogProvider
	SubmissionRepo repository.SubmissionRepository
	Points         usecase.PointsUsecase
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDestinationService is the constructor for destinationService.
func NewDestinationService(params DestinationServiceParams) usecase.DestinationUsecase {
	limit := defaultDestinationLimit
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.DefaultLimit > 0 {
		limit = params.Config.Catalog.DefaultLimit
	}

	return &destinationService{
		txManager:      params.TxManager,
		catalog:        params.Catalog,
		submissionRepo: params.SubmissionRepo,
		points:         params.Points,
		publisher:      params.Publisher,
		defaultLimit:   limit,
		logger:         params.Logger,
	}
}

// ListDestinations returns annotated catalog destinations sorted by department and municipality.
func (srv *destinationService) ListDestinations(ctx context.Context, filter usecase.DestinationFilter) ([]*entity.Destination, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = srv.defaultLimit
	}

	destinations, err := srv.catalog.ListDestinations(ctx, service.RegionFilter{
		Department: filter.Department,
		Category:   filter.Category,
	})
	if err != nil {
		return nil, asCatalogUnavailable(err)
	}

	annotated := make([]*entity.Destination, 0, len(destinations))
	for _, d := range destinations {
		annotated = append(annotated, scoring.Annotate(d))
	}
	sort.SliceStable(annotated, func(i, j int) bool {
		if annotated[i].Department != annotated[j].Department {
			return annotated[i].Department < annotated[j].Department
		}

		return annotated[i].Municipality < annotated[j].Municipality
	})
	if len(annotated) > limit {
		annotated = annotated[:limit]
	}

	return annotated, nil
}

// SubmitDestination stores a pending submission and awards the submitter.
func (srv *destinationService) SubmitDestination(ctx context.Context, input usecase.SubmitDestinationInput) (*entity.DestinationSubmission, error) {
	if strings.TrimSpace(input.UserID) == "" || strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Category) == "" || strings.TrimSpace(input.Department) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id, name, category and department are required")
	}

	submission := &entity.DestinationSubmission{
		ID:           uuid.NewString(),
		UserID:       strings.TrimSpace(input.UserID),
		Name:         strings.TrimSpace(input.Name),
		Category:     strings.TrimSpace(input.Category),
		Department:   strings.TrimSpace(input.Department),
		Municipality: strings.TrimSpace(input.Municipality),
		Description:  strings.TrimSpace(input.Description),
		Status:       entity.SubmissionPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := srv.submissionRepo.Create(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "failed to create submission")
	}

	srv.award(ctx, submission, entity.PointsForDestinationSubmit, entity.TransactionDestinationSubmitted, "Destino enviado: ")
	publishEvent(ctx, srv.logger, srv.publisher, &service.GamificationEvent{
		Type:        service.EventSubmissionCreated,
		UserID:      submission.UserID,
		ReferenceID: submission.ID,
		OccurredAt:  submission.CreatedAt,
	})

	return submission, nil
}

// ApproveSubmission accepts a pending submission and awards the submitter.
func (srv *destinationService) ApproveSubmission(ctx context.Context, submissionID string) (*entity.DestinationSubmission, error) {
	submission, err := srv.review(ctx, submissionID, entity.SubmissionApproved)
	if err != nil {
		return nil, err
	}

	srv.award(ctx, submission, entity.PointsForDestinationApproval, entity.TransactionDestinationApproved, "Destino aprobado: ")

	return submission, nil
}

// RejectSubmission declines a pending submission. No points are involved.
func (srv *destinationService) RejectSubmission(ctx context.Context, submissionID string) (*entity.DestinationSubmission, error) {
	return srv.review(ctx, submissionID, entity.SubmissionRejected)
}

func (srv *destinationService) review(ctx context.Context, submissionID string, status entity.SubmissionStatus) (*entity.DestinationSubmission, error) {
	var submission *entity.DestinationSubmission

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		found, err := submissionRepo.FindByID(ctx, submissionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrSubmissionNotFound.WithDetails(submissionID)
			}

			return errors.Wrap(err, "failed to find submission")
		}
		if found.Status != entity.SubmissionPending {
			return domainerrors.ErrSubmissionAlreadyReviewed.WithDetails(string(found.Status))
		}

		reviewedAt := time.Now().UTC()
		updated, err := submissionRepo.UpdateStatus(ctx, submissionID, status, reviewedAt)
		if err != nil {
			return errors.Wrap(err, "failed to update submission")
		}
		if !updated {
			return domainerrors.ErrSubmissionAlreadyReviewed.WithDetails(submissionID)
		}

		found.Status = status
		found.ReviewedAt = &reviewedAt
		submission = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Submission reviewed",
		slog.String("submissionID", submissionID),
		slog.String("status", string(status)),
	)
	publishEvent(ctx, srv.logger, srv.publisher, &service.GamificationEvent{
		Type:        service.EventSubmissionReviewed,
		UserID:      submission.UserID,
		ReferenceID: submission.ID,
		Attributes:  map[string]any{"status": string(status)},
	})

	return submission, nil
}

// award credits the submitter. Failures are logged and never fail the submission flow.
func (srv *destinationService) award(
	ctx context.Context,
	submission *entity.DestinationSubmission,
	points int,
	txType entity.TransactionType,
	description string,
) {
	refID := submission.ID
	if _, err := srv.points.Credit(ctx, usecase.CreditInput{
		UserID:      submission.UserID,
		Points:      points,
		Type:        txType,
		Description: description + submission.Name,
		ReferenceID: &refID,
	}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to award submission points",
			slog.String("submissionID", submission.ID),
			slog.String("type", string(txType)),
			slog.Any("error", err),
		)
	}
}

func (srv *destinationService) ListSubmissions(ctx context.Context, status entity.SubmissionStatus) ([]*entity.DestinationSubmission, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	submissions, err := srv.submissionRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list submissions")
	}

	return submissions, nil
}
