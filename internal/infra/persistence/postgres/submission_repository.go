package postgres

import (
	"context"
	"time"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// submissionRepository implements the domain.SubmissionRepository interface using GORM.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create stores a new submission.
func (repo *submissionRepository) Create(ctx context.Context, submission *entity.DestinationSubmission) error {
	err := repo.db.WithContext(ctx).Create(fromSubmissionDomain(submission)).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return errors.Wrap(err, "submission violates table constraints")
		}

		return storeError(err, "failed to create submission")
	}

	return nil
}

// FindByID retrieves a submission.
func (repo *submissionRepository) FindByID(ctx context.Context, id string) (*entity.DestinationSubmission, error) {
	var submissionM model.SubmissionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, storeError(err, "failed to find submission by id")
	}

	return toSubmissionDomain(&submissionM), nil
}

// UpdateStatus moves a pending submission to its review outcome.
func (repo *submissionRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status entity.SubmissionStatus,
	reviewedAt time.Time,
) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ? AND status = ?", id, string(entity.SubmissionPending)).
		Updates(map[string]any{"status": string(status), "reviewed_at": reviewedAt})
	if result.Error != nil {
		return false, storeError(result.Error, "failed to update submission status")
	}

	return result.RowsAffected == 1, nil
}

// List returns submissions oldest first.
func (repo *submissionRepository) List(ctx context.Context, status entity.SubmissionStatus) ([]*entity.DestinationSubmission, error) {
	query := repo.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var submissionMs []*model.SubmissionModel
	if err := query.Find(&submissionMs).Error; err != nil {
		return nil, storeError(err, "failed to list submissions")
	}

	submissions := make([]*entity.DestinationSubmission, 0, len(submissionMs))
	for _, submissionM := range submissionMs {
		submissions = append(submissions, toSubmissionDomain(submissionM))
	}

	return submissions, nil
}

// --- Mapper Functions ---

func toSubmissionDomain(data *model.SubmissionModel) *entity.DestinationSubmission {
	if data == nil {
		return nil
	}

	return &entity.DestinationSubmission{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Category:     data.Category,
		Department:   data.Department,
		Municipality: data.Municipality,
		Description:  data.Description,
		Status:       entity.SubmissionStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		ReviewedAt:   data.ReviewedAt,
	}
}

func fromSubmissionDomain(data *entity.DestinationSubmission) *model.SubmissionModel {
	if data == nil {
		return nil
	}

	return &model.SubmissionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Category:     data.Category,
		Department:   data.Department,
		Municipality: data.Municipality,
		Description:  data.Description,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		ReviewedAt:   data.ReviewedAt,
	}
}
