package memory

import (
	"context"
	"slices"
	"sort"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
)

type interactionRepository struct {
	sc scope
}

// NewInteractionRepository creates an interaction repository backed by the store.
func NewInteractionRepository(store *Store) repository.InteractionRepository {
	return &interactionRepository{sc: scope{store: store}}
}

func (r *interactionRepository) Append(_ context.Context, interaction *entity.Interaction) error {
	stored := cloneInteraction(interaction)
	r.sc.write(func() func() {
		s := r.sc.store
		s.interactions = append(s.interactions, stored)

		return func() { s.interactions = s.interactions[:len(s.interactions)-1] }
	})

	return nil
}

func (r *interactionRepository) List(_ context.Context, filter repository.InteractionFilter) ([]*entity.Interaction, error) {
	var out []*entity.Interaction
	r.sc.read(func() {
		for _, it := range r.sc.store.interactions {
			if matches(it, filter.UserID, filter.Actions) {
				out = append(out, cloneInteraction(it))
			}
		}
	})

	return out, nil
}

func (r *interactionRepository) CountByDestination(_ context.Context, actions []entity.Action) ([]repository.DestinationCount, error) {
	var out []repository.DestinationCount
	r.sc.read(func() {
		index := make(map[string]int)
		for _, it := range r.sc.store.interactions {
			if !matches(it, "", actions) {
				continue
			}
			pos, ok := index[it.DestinationID]
			if !ok {
				pos = len(out)
				index[it.DestinationID] = pos
				out = append(out, repository.DestinationCount{DestinationID: it.DestinationID})
			}
			out[pos].Count++
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out, nil
}

func (r *interactionRepository) Count(_ context.Context) (int64, error) {
	var n int
	r.sc.read(func() { n = len(r.sc.store.interactions) })

	return int64(n), nil
}

func matches(it *entity.Interaction, userID string, actions []entity.Action) bool {
	if userID != "" && it.UserID != userID {
		return false
	}

	return len(actions) == 0 || slices.Contains(actions, it.Action)
}
