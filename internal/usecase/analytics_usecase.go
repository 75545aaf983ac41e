package usecase

import (
	"context"

	"destinos/internal/domain/entity"
)

// TrendsOutput aggregates interactions by the stated preferences of the users behind them.
type TrendsOutput struct {
	Departments       map[string]int `json:"departments"`
	Categories        map[string]int `json:"categories"`
	TravelStyles      map[string]int `json:"travel_styles"`
	TotalUsers        int64          `json:"total_users"`
	TotalInteractions int64          `json:"total_interactions"`
}

// AnalyticsUsecase reports aggregate engagement.
type AnalyticsUsecase interface {
	// PopularDestinations ranks catalog destinations by like and view count.
	PopularDestinations(ctx context.Context, limit int) ([]*entity.Destination, error)
	Trends(ctx context.Context) (*TrendsOutput, error)
}
