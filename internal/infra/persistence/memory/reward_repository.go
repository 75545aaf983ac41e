package memory

import (
	"context"
	"sort"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
)

type rewardRepository struct {
	sc scope
}

// NewRewardRepository creates a reward repository backed by the store.
func NewRewardRepository(store *Store) repository.RewardRepository {
	return &rewardRepository{sc: scope{store: store}}
}

func (r *rewardRepository) FindByID(_ context.Context, id string) (*entity.Reward, error) {
	var found *entity.Reward
	r.sc.read(func() {
		if rw, ok := r.sc.store.rewards[id]; ok {
			found = cloneReward(rw)
		}
	})
	if found == nil {
		return nil, repository.ErrRewardNotFound
	}

	return found, nil
}

// FindByIDForUpdate is FindByID; inside a transaction the store is already exclusively locked.
func (r *rewardRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Reward, error) {
	return r.FindByID(ctx, id)
}

func (r *rewardRepository) List(_ context.Context, activeOnly bool) ([]*entity.Reward, error) {
	var out []*entity.Reward
	r.sc.read(func() {
		for _, id := range r.sc.store.rewardOrder {
			rw := r.sc.store.rewards[id]
			if activeOnly && !rw.IsActive {
				continue
			}
			out = append(out, cloneReward(rw))
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].PointsRequired < out[j].PointsRequired })

	return out, nil
}

func (r *rewardRepository) Create(_ context.Context, reward *entity.Reward) (bool, error) {
	stored := cloneReward(reward)
	created := false
	r.sc.write(func() func() {
		s := r.sc.store
		if _, exists := s.rewards[stored.ID]; exists {
			return nil
		}
		s.rewards[stored.ID] = stored
		s.rewardOrder = append(s.rewardOrder, stored.ID)
		created = true

		return func() {
			delete(s.rewards, stored.ID)
			s.rewardOrder = s.rewardOrder[:len(s.rewardOrder)-1]
		}
	})

	return created, nil
}

// IncrementRedemptions checks the cap and bumps the counter under the store write lock.
func (r *rewardRepository) IncrementRedemptions(_ context.Context, id string) (int, error) {
	var (
		count int
		err   error
	)
	r.sc.write(func() func() {
		rw, ok := r.sc.store.rewards[id]
		if !ok {
			err = repository.ErrRewardNotFound

			return nil
		}
		if !rw.HasCapacity() {
			err = repository.ErrRedemptionCapReached

			return nil
		}
		rw.CurrentRedemptions++
		count = rw.CurrentRedemptions

		return func() { rw.CurrentRedemptions-- }
	})

	return count, err
}
