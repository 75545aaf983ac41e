package memory

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
)

type redemptionRepository struct {
	sc scope
}

// NewRedemptionRepository creates a redemption repository backed by the store.
func NewRedemptionRepository(store *Store) repository.RedemptionRepository {
	return &redemptionRepository{sc: scope{store: store}}
}

func (r *redemptionRepository) Append(_ context.Context, redemption *entity.Redemption) error {
	stored := cloneRedemption(redemption)
	r.sc.write(func() func() {
		s := r.sc.store
		s.redemptions[stored.ID] = stored
		s.redeemOrder = append(s.redeemOrder, stored.ID)

		return func() {
			delete(s.redemptions, stored.ID)
			s.redeemOrder = s.redeemOrder[:len(s.redeemOrder)-1]
		}
	})

	return nil
}

func (r *redemptionRepository) FindByID(_ context.Context, id string) (*entity.Redemption, error) {
	var found *entity.Redemption
	r.sc.read(func() {
		if rd, ok := r.sc.store.redemptions[id]; ok {
			found = cloneRedemption(rd)
		}
	})
	if found == nil {
		return nil, repository.ErrRedemptionNotFound
	}

	return found, nil
}

func (r *redemptionRepository) ListByUser(_ context.Context, userID string) ([]*entity.Redemption, error) {
	var out []*entity.Redemption
	r.sc.read(func() {
		order := r.sc.store.redeemOrder
		for i := len(order) - 1; i >= 0; i-- {
			if rd := r.sc.store.redemptions[order[i]]; rd.UserID == userID {
				out = append(out, cloneRedemption(rd))
			}
		}
	})

	return out, nil
}
