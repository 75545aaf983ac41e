package repository

import (
	"context"
	"errors"

	"destinos/internal/domain/entity"
)

var (
	// ErrRewardNotFound is returned when a reward does not exist.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrRedemptionCapReached is returned by IncrementRedemptions when the reward is at its cap.
	ErrRedemptionCapReached = errors.New("reward redemption cap reached")
	// ErrRedemptionNotFound is returned when a redemption does not exist.
	ErrRedemptionNotFound = errors.New("redemption not found")
)

// RewardRepository stores the reward catalog and its redemption counters.
type RewardRepository interface {
	// FindByID retrieves a reward.
	FindByID(ctx context.Context, id string) (*entity.Reward, error)

	// FindByIDForUpdate retrieves a reward and locks it until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Reward, error)

	// List returns rewards ordered by points required, only active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]*entity.Reward, error)

	// Create stores a new reward. Creating an existing ID is a no-op returning false.
	Create(ctx context.Context, reward *entity.Reward) (bool, error)

	// IncrementRedemptions adds exactly one to the redemption counter if the cap allows it
	// and returns the new count. It fails with ErrRedemptionCapReached otherwise.
	IncrementRedemptions(ctx context.Context, id string) (int, error)
}

// RedemptionRepository stores completed redemptions.
type RedemptionRepository interface {
	// Append records a new redemption.
	Append(ctx context.Context, redemption *entity.Redemption) error

	// FindByID retrieves a redemption.
	FindByID(ctx context.Context, id string) (*entity.Redemption, error)

	// ListByUser returns the user's redemptions, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Redemption, error)
}
