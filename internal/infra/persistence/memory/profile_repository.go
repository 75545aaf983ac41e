package memory

import (
	"context"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
)

type profileRepository struct {
	sc scope
}

// NewProfileRepository creates a profile repository backed by the store.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{sc: scope{store: store}}
}

func (r *profileRepository) FindByID(_ context.Context, id string) (*entity.UserProfile, error) {
	var found *entity.UserProfile
	r.sc.read(func() {
		if p, ok := r.sc.store.profiles[id]; ok {
			found = cloneProfile(p)
		}
	})
	if found == nil {
		return nil, repository.ErrProfileNotFound
	}

	return found, nil
}

func (r *profileRepository) List(_ context.Context, excludeID string) ([]*entity.UserProfile, error) {
	var out []*entity.UserProfile
	r.sc.read(func() {
		out = make([]*entity.UserProfile, 0, len(r.sc.store.profileOrder))
		for _, id := range r.sc.store.profileOrder {
			if excludeID != "" && id == excludeID {
				continue
			}
			out = append(out, cloneProfile(r.sc.store.profiles[id]))
		}
	})

	return out, nil
}

func (r *profileRepository) Upsert(_ context.Context, profile *entity.UserProfile) error {
	stored := cloneProfile(profile)
	r.sc.write(func() func() {
		s := r.sc.store
		previous, existed := s.profiles[stored.ID]
		s.profiles[stored.ID] = stored
		if existed {
			return func() { s.profiles[stored.ID] = previous }
		}
		s.profileOrder = append(s.profileOrder, stored.ID)

		return func() {
			delete(s.profiles, stored.ID)
			s.profileOrder = s.profileOrder[:len(s.profileOrder)-1]
		}
	})

	return nil
}

func (r *profileRepository) Count(_ context.Context) (int64, error) {
	var n int
	r.sc.read(func() { n = len(r.sc.store.profiles) })

	return int64(n), nil
}
