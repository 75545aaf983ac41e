// Package memory is an in-process implementation of the persistence layer.
// It keeps every record in maps guarded by one RWMutex and supports
// transactions by holding the write lock and undoing writes on failure.
package memory

import (
	"context"
	"sync"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/repository"

	"github.com/pkg/errors"
)

// Store holds all records of the memory driver.
type Store struct {
	mu sync.RWMutex

	profiles     map[string]*entity.UserProfile
	profileOrder []string

	interactions []*entity.Interaction
	transactions []*entity.PointTransaction

	rewards     map[string]*entity.Reward
	rewardOrder []string

	redemptions map[string]*entity.Redemption
	redeemOrder []string

	submissions     map[string]*entity.DestinationSubmission
	submissionOrder []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		profiles:    make(map[string]*entity.UserProfile),
		rewards:     make(map[string]*entity.Reward),
		redemptions: make(map[string]*entity.Redemption),
		submissions: make(map[string]*entity.DestinationSubmission),
	}
}

// txState collects undo actions for the transaction in progress.
type txState struct {
	undo []func()
}

func (t *txState) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// scope binds repositories either to the store directly or to a running transaction.
// Inside a transaction the write lock is already held by Execute.
type scope struct {
	store *Store
	tx    *txState
}

func (sc scope) read(fn func()) {
	if sc.tx == nil {
		sc.store.mu.RLock()
		defer sc.store.mu.RUnlock()
	}
	fn()
}

// write runs a mutation. The returned undo is kept only inside a transaction.
func (sc scope) write(fn func() (undo func())) {
	if sc.tx == nil {
		sc.store.mu.Lock()
		defer sc.store.mu.Unlock()
		fn()

		return
	}
	if undo := fn(); undo != nil {
		sc.tx.undo = append(sc.tx.undo, undo)
	}
}

// transactionManager implements the domain's TransactionManager interface for the memory store.
type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories bound to one transaction.
type repositoryFactory struct {
	sc scope
}

func (f *repositoryFactory) PointsRepo() repository.PointsRepository {
	return &pointsRepository{sc: f.sc}
}

func (f *repositoryFactory) RewardRepo() repository.RewardRepository {
	return &rewardRepository{sc: f.sc}
}

func (f *repositoryFactory) RedemptionRepo() repository.RedemptionRepository {
	return &redemptionRepository{sc: f.sc}
}

func (f *repositoryFactory) SubmissionRepo() repository.SubmissionRepository {
	return &submissionRepository{sc: f.sc}
}

// NewTransactionManager is the constructor for the memory transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store's write lock. Transactions are fully
// serialized; any error or panic undoes every write fn made.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := &txState{}
	defer func() {
		if r := recover(); r != nil {
			tx.rollback()
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{sc: scope{store: tm.store, tx: tx}}); err != nil {
		tx.rollback()

		return err
	}

	return nil
}
