// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a single profile by user ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, storeError(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// List returns all profiles in creation order.
func (repo *profileRepository) List(ctx context.Context, excludeID string) ([]*entity.UserProfile, error) {
	query := repo.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var profileMs []*model.ProfileModel
	if err := query.Find(&profileMs).Error; err != nil {
		return nil, storeError(err, "failed to list profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Upsert replaces every preference field and keeps the original creation time.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "preferred_categories", "preferred_departments",
			"age_range", "travel_style", "updated_at",
		}),
	}).Create(profileM).Error
	if err != nil {
		return storeError(err, "failed to upsert profile")
	}

	return nil
}

// Count returns the number of stored profiles.
func (repo *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, storeError(err, "failed to count profiles")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		PreferredCategories:  append([]string{}, data.PreferredCategories...),
		PreferredDepartments: append([]string{}, data.PreferredDepartments...),
		AgeRange:             data.AgeRange,
		TravelStyle:          data.TravelStyle,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		PreferredCategories:  datatypes.JSONSlice[string](append([]string{}, data.PreferredCategories...)),
		PreferredDepartments: datatypes.JSONSlice[string](append([]string{}, data.PreferredDepartments...)),
		AgeRange:             data.AgeRange,
		TravelStyle:          data.TravelStyle,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
