package postgres

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
	"destinos/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// pointsRepository implements the domain.PointsRepository interface using GORM.
type pointsRepository struct {
	db *gorm.DB
}

// NewPointsRepository is the constructor for pointsRepository.
func NewPointsRepository(db *gorm.DB) repository.PointsRepository {
	return &pointsRepository{db: db}
}

// Append records a new ledger entry.
func (repo *pointsRepository) Append(ctx context.Context, txn *entity.PointTransaction) error {
	if err := repo.db.WithContext(ctx).Create(fromPointTransactionDomain(txn)).Error; err != nil {
		return storeError(err, "failed to append point transaction")
	}

	return nil
}

// SumByUser returns the user's balance.
func (repo *pointsRepository) SumByUser(ctx context.Context, userID string) (int, error) {
	var total int
	err := repo.db.WithContext(ctx).
		Model(&model.PointTransactionModel{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, storeError(err, "failed to sum points")
	}

	return total, nil
}

// ListByUser returns the user's most recent transactions first.
func (repo *pointsRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PointTransaction, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("seq DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txnMs []*model.PointTransactionModel
	if err := query.Find(&txnMs).Error; err != nil {
		return nil, storeError(err, "failed to list point transactions")
	}

	txns := make([]*entity.PointTransaction, 0, len(txnMs))
	for _, txnM := range txnMs {
		txns = append(txns, toPointTransactionDomain(txnM))
	}

	return txns, nil
}

// LockUser takes a transaction-scoped advisory lock keyed by the user ID.
// The lock is released on commit or rollback.
func (repo *pointsRepository) LockUser(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID).Error; err != nil {
		return storeError(err, "failed to lock user ledger")
	}

	return nil
}

// --- Mapper Functions ---

func toPointTransactionDomain(data *model.PointTransactionModel) *entity.PointTransaction {
	if data == nil {
		return nil
	}

	return &entity.PointTransaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Type:        entity.TransactionType(data.Type),
		Description: data.Description,
		ReferenceID: data.ReferenceID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPointTransactionDomain(data *entity.PointTransaction) *model.PointTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PointTransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Type:        string(data.Type),
		Description: data.Description,
		ReferenceID: data.ReferenceID,
		CreatedAt:   data.CreatedAt,
	}
}
