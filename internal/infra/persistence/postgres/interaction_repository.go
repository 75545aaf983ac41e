package postgres

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// interactionRepository implements the domain.InteractionRepository interface using GORM.
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository is the constructor for interactionRepository.
func NewInteractionRepository(db *gorm.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

// Append records a new interaction.
func (repo *interactionRepository) Append(ctx context.Context, interaction *entity.Interaction) error {
	if err := repo.db.WithContext(ctx).Create(fromInteractionDomain(interaction)).Error; err != nil {
		return storeError(err, "failed to append interaction")
	}

	return nil
}

// List returns interactions matching the filter in insertion order.
func (repo *interactionRepository) List(ctx context.Context, filter repository.InteractionFilter) ([]*entity.Interaction, error) {
	query := repo.db.WithContext(ctx).Order("seq ASC")
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if len(filter.Actions) > 0 {
		query = query.Where("action IN ?", actionStrings(filter.Actions))
	}

	var interactionMs []*model.InteractionModel
	if err := query.Find(&interactionMs).Error; err != nil {
		return nil, storeError(err, "failed to list interactions")
	}

	interactions := make([]*entity.Interaction, 0, len(interactionMs))
	for _, interactionM := range interactionMs {
		interactions = append(interactions, toInteractionDomain(interactionM))
	}

	return interactions, nil
}

// CountByDestination ranks destinations by interaction count. Ties keep the
// destination that was first interacted with ahead.
func (repo *interactionRepository) CountByDestination(ctx context.Context, actions []entity.Action) ([]repository.DestinationCount, error) {
	var rows []struct {
		DestinationID string
		Count         int
	}

	query := repo.db.WithContext(ctx).
		Model(&model.InteractionModel{}).
		Select("destination_id, COUNT(*) AS count").
		Group("destination_id").
		Order("count DESC, MIN(seq) ASC")
	if len(actions) > 0 {
		query = query.Where("action IN ?", actionStrings(actions))
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, storeError(err, "failed to count interactions by destination")
	}

	counts := make([]repository.DestinationCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.DestinationCount{DestinationID: row.DestinationID, Count: row.Count})
	}

	return counts, nil
}

// Count returns the total number of interactions.
func (repo *interactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.InteractionModel{}).Count(&count).Error; err != nil {
		return 0, storeError(err, "failed to count interactions")
	}

	return count, nil
}

func actionStrings(actions []entity.Action) []string {
	out := make([]string, 0, len(actions))
	for _, action := range actions {
		out = append(out, action.String())
	}

	return out
}

// --- Mapper Functions ---

func toInteractionDomain(data *model.InteractionModel) *entity.Interaction {
	if data == nil {
		return nil
	}

	return &entity.Interaction{
		ID:            data.ID,
		UserID:        data.UserID,
		DestinationID: data.DestinationID,
		Action:        entity.Action(data.Action),
		Timestamp:     data.Timestamp,
	}
}

func fromInteractionDomain(data *entity.Interaction) *model.InteractionModel {
	if data == nil {
		return nil
	}

	return &model.InteractionModel{
		ID:            data.ID,
		UserID:        data.UserID,
		DestinationID: data.DestinationID,
		Action:        data.Action.String(),
		Timestamp:     data.Timestamp,
	}
}
