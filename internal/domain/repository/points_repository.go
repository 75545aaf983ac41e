package repository

import (
	"context"

	"destinos/internal/domain/entity"
)

// PointsRepository is the append-only points ledger.
type PointsRepository interface {
	// Append records a new transaction. Transactions are never updated or deleted.
	Append(ctx context.Context, txn *entity.PointTransaction) error

	// SumByUser returns the sum of all point values for the user, 0 when there are none.
	SumByUser(ctx context.Context, userID string) (int, error)

	// ListByUser returns up to limit transactions for the user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PointTransaction, error)

	// LockUser serializes ledger debits for one user until the surrounding transaction ends.
	// It is only meaningful on a transaction-bound repository.
	LockUser(ctx context.Context, userID string) error
}
