package memory

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
)

type pointsRepository struct {
	sc scope
}

// NewPointsRepository creates a points ledger backed by the store.
func NewPointsRepository(store *Store) repository.PointsRepository {
	return &pointsRepository{sc: scope{store: store}}
}

func (r *pointsRepository) Append(_ context.Context, txn *entity.PointTransaction) error {
	stored := cloneTransaction(txn)
	r.sc.write(func() func() {
		s := r.sc.store
		s.transactions = append(s.transactions, stored)

		return func() { s.transactions = s.transactions[:len(s.transactions)-1] }
	})

	return nil
}

func (r *pointsRepository) SumByUser(_ context.Context, userID string) (int, error) {
	total := 0
	r.sc.read(func() {
		for _, t := range r.sc.store.transactions {
			if t.UserID == userID {
				total += t.Points
			}
		}
	})

	return total, nil
}

// ListByUser walks the log backwards, so the newest entries come first.
func (r *pointsRepository) ListByUser(_ context.Context, userID string, limit int) ([]*entity.PointTransaction, error) {
	var out []*entity.PointTransaction
	r.sc.read(func() {
		txns := r.sc.store.transactions
		for i := len(txns) - 1; i >= 0; i-- {
			if limit > 0 && len(out) >= limit {
				break
			}
			if txns[i].UserID == userID {
				out = append(out, cloneTransaction(txns[i]))
			}
		}
	})

	return out, nil
}

// LockUser is a no-op: a memory transaction already holds the store's write lock.
func (r *pointsRepository) LockUser(_ context.Context, _ string) error {
	return nil
}
