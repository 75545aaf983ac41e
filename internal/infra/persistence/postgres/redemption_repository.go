package postgres

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// redemptionRepository implements the domain.RedemptionRepository interface using GORM.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

// Append records a redemption.
func (repo *redemptionRepository) Append(ctx context.Context, redemption *entity.Redemption) error {
	err := repo.db.WithContext(ctx).Create(fromRedemptionDomain(redemption)).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "duplicate voucher code")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRewardNotFound
		}

		return storeError(err, "failed to append redemption")
	}

	return nil
}

// FindByID retrieves a redemption.
func (repo *redemptionRepository) FindByID(ctx context.Context, id string) (*entity.Redemption, error) {
	var redemptionM model.RedemptionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, storeError(err, "failed to find redemption by id")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// ListByUser returns the user's redemptions newest first.
func (repo *redemptionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error) {
	var redemptionMs []*model.RedemptionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&redemptionMs).Error
	if err != nil {
		return nil, storeError(err, "failed to list redemptions")
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionMs))
	for _, redemptionM := range redemptionMs {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, nil
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.RedemptionModel) *entity.Redemption {
	if data == nil {
		return nil
	}

	return &entity.Redemption{
		ID:             data.ID,
		UserID:         data.UserID,
		RewardID:       data.RewardID,
		PointsSpent:    data.PointsSpent,
		Status:         entity.RedemptionStatus(data.Status),
		PartnerContact: data.PartnerContact,
		VoucherCode:    data.VoucherCode,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:             data.ID,
		UserID:         data.UserID,
		RewardID:       data.RewardID,
		PointsSpent:    data.PointsSpent,
		Status:         string(data.Status),
		PartnerContact: data.PartnerContact,
		VoucherCode:    data.VoucherCode,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
