package memory

import (
	"context"
	"time"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"
)

type submissionRepository struct {
	sc scope
}

// NewSubmissionRepository creates a submission repository backed by the store.
func NewSubmissionRepository(store *Store) repository.SubmissionRepository {
	return &submissionRepository{sc: scope{store: store}}
}

func (r *submissionRepository) Create(_ context.Context, submission *entity.DestinationSubmission) error {
	stored := cloneSubmission(submission)
	r.sc.write(func() func() {
		s := r.sc.store
		s.submissions[stored.ID] = stored
		s.submissionOrder = append(s.submissionOrder, stored.ID)

		return func() {
			delete(s.submissions, stored.ID)
			s.submissionOrder = s.submissionOrder[:len(s.submissionOrder)-1]
		}
	})

	return nil
}

func (r *submissionRepository) FindByID(_ context.Context, id string) (*entity.DestinationSubmission, error) {
	var found *entity.DestinationSubmission
	r.sc.read(func() {
		if sub, ok := r.sc.store.submissions[id]; ok {
			found = cloneSubmission(sub)
		}
	})
	if found == nil {
		return nil, repository.ErrSubmissionNotFound
	}

	return found, nil
}

func (r *submissionRepository) UpdateStatus(_ context.Context, id string, status entity.SubmissionStatus, reviewedAt time.Time) (bool, error) {
	var (
		updated bool
		err     error
	)
	r.sc.write(func() func() {
		sub, ok := r.sc.store.submissions[id]
		if !ok {
			err = repository.ErrSubmissionNotFound

			return nil
		}
		if sub.Status != entity.SubmissionPending {
			return nil
		}
		previous := cloneSubmission(sub)
		sub.Status = status
		sub.ReviewedAt = &reviewedAt
		updated = true

		return func() {
			sub.Status = previous.Status
			sub.ReviewedAt = previous.ReviewedAt
		}
	})

	return updated, err
}

func (r *submissionRepository) List(_ context.Context, status entity.SubmissionStatus) ([]*entity.DestinationSubmission, error) {
	var out []*entity.DestinationSubmission
	r.sc.read(func() {
		for _, id := range r.sc.store.submissionOrder {
			sub := r.sc.store.submissions[id]
			if status != "" && sub.Status != status {
				continue
			}
			out = append(out, cloneSubmission(sub))
		}
	})

	return out, nil
}
