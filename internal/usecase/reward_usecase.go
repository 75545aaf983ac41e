package usecase

import (
	"context"
	"time"

	"destinos/internal/domain/entity"
)

// CreateRewardInput defines the data required to add a reward to the catalog.
// An empty ID is generated.
type CreateRewardInput struct {
	ID             string
	Title          string
	Description    string
	PointsRequired int
	Category       string
	PartnerName    string
	PartnerContact string
	MaxRedemptions *int
	ExpiresAt      *time.Time
}

// VoucherOutput is a rendered voucher for a redemption.
type VoucherOutput struct {
	Redemption *entity.Redemption
	PNG        []byte
}

// RewardUsecase manages the reward catalog and point-for-reward exchanges.
type RewardUsecase interface {
	// Redeem exchanges the user's points for the reward, all or nothing.
	Redeem(ctx context.Context, userID, rewardID string) (*entity.Redemption, error)

	CreateReward(ctx context.Context, input CreateRewardInput) (*entity.Reward, error)

	// SeedRewards creates the given rewards unless a reward with the same ID exists.
	// It returns how many were created.
	SeedRewards(ctx context.Context, inputs []CreateRewardInput) (int, error)

	ListRewards(ctx context.Context, activeOnly bool) ([]*entity.Reward, error)
	ListRedemptions(ctx context.Context, userID string) ([]*entity.Redemption, error)
	GetRedemption(ctx context.Context, redemptionID string) (*entity.Redemption, error)
	Voucher(ctx context.Context, redemptionID string) (*VoucherOutput, error)
}
