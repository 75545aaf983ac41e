package usecase

import (
	"context"

	"destinos/internal/domain/entity"
)

// CreditInput describes one ledger entry. Points may be negative for debits.
type CreditInput struct {
	UserID      string
	Points      int
	Type        entity.TransactionType
	Description string
	ReferenceID *string
}

// PointsSummary is a user's balance with its tier and latest activity.
type PointsSummary struct {
	UserID             string                     `json:"user_id"`
	TotalPoints        int                        `json:"total_points"`
	Level              entity.Level               `json:"level"`
	RecentTransactions []*entity.PointTransaction `json:"recent_transactions"`
}

// PointsUsecase is the points ledger. It never rejects a credit for the balance it produces.
type PointsUsecase interface {
	Credit(ctx context.Context, input CreditInput) (*entity.PointTransaction, error)
	Balance(ctx context.Context, userID string) (int, error)
	Summary(ctx context.Context, userID string) (*PointsSummary, error)
	History(ctx context.Context, userID string, limit int) ([]*entity.PointTransaction, error)
}
