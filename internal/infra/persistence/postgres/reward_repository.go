package postgres

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rewardRepository implements the domain.RewardRepository interface using GORM.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

// FindByID retrieves a reward.
func (repo *rewardRepository) FindByID(ctx context.Context, id string) (*entity.Reward, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a reward with a row lock held until the transaction ends.
func (repo *rewardRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Reward, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *rewardRepository) find(query *gorm.DB, id string) (*entity.Reward, error) {
	var rewardM model.RewardModel
	if err := query.Where("id = ?", id).First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, storeError(err, "failed to find reward by id")
	}

	return toRewardDomain(&rewardM), nil
}

// List returns rewards cheapest first.
func (repo *rewardRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Reward, error) {
	query := repo.db.WithContext(ctx).Order("points_required ASC, created_at ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rewardMs []*model.RewardModel
	if err := query.Find(&rewardMs).Error; err != nil {
		return nil, storeError(err, "failed to list rewards")
	}

	rewards := make([]*entity.Reward, 0, len(rewardMs))
	for _, rewardM := range rewardMs {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

// Create inserts the reward unless its ID already exists.
func (repo *rewardRepository) Create(ctx context.Context, reward *entity.Reward) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(fromRewardDomain(reward))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return false, errors.Wrap(result.Error, "reward violates catalog constraints")
		}

		return false, storeError(result.Error, "failed to create reward")
	}

	return result.RowsAffected == 1, nil
}

// IncrementRedemptions bumps the counter in a single conditional statement so
// the cap holds even without a prior row lock.
func (repo *rewardRepository) IncrementRedemptions(ctx context.Context, id string) (int, error) {
	var counts []int
	err := repo.db.WithContext(ctx).Raw(
		`UPDATE rewards SET current_redemptions = current_redemptions + 1
		 WHERE id = ? AND (max_redemptions IS NULL OR current_redemptions < max_redemptions)
		 RETURNING current_redemptions`, id,
	).Scan(&counts).Error
	if err != nil {
		return 0, storeError(err, "failed to increment redemptions")
	}
	if len(counts) == 1 {
		return counts[0], nil
	}

	var exists int64
	if err := repo.db.WithContext(ctx).Model(&model.RewardModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return 0, storeError(err, "failed to check reward")
	}
	if exists == 0 {
		return 0, repository.ErrRewardNotFound
	}

	return 0, repository.ErrRedemptionCapReached
}

// --- Mapper Functions ---

func toRewardDomain(data *model.RewardModel) *entity.Reward {
	if data == nil {
		return nil
	}

	return &entity.Reward{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		PointsRequired:     data.PointsRequired,
		Category:           data.Category,
		PartnerName:        data.PartnerName,
		PartnerContact:     data.PartnerContact,
		IsActive:           data.IsActive,
		MaxRedemptions:     data.MaxRedemptions,
		CurrentRedemptions: data.CurrentRedemptions,
		ExpiresAt:          data.ExpiresAt,
		CreatedAt:          data.CreatedAt,
	}
}

func fromRewardDomain(data *entity.Reward) *model.RewardModel {
	if data == nil {
		return nil
	}

	return &model.RewardModel{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		PointsRequired:     data.PointsRequired,
		Category:           data.Category,
		PartnerName:        data.PartnerName,
		PartnerContact:     data.PartnerContact,
		IsActive:           data.IsActive,
		MaxRedemptions:     data.MaxRedemptions,
		CurrentRedemptions: data.CurrentRedemptions,
		ExpiresAt:          data.ExpiresAt,
		CreatedAt:          data.CreatedAt,
	}
}
