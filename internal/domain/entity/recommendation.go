package entity

import (
	"slices"
	"time"
)

// Source tells which branch of the hybrid recommender produced a candidate.
type Source string

const (
	SourceCollaborative Source = "collaborative"
	SourceContent       Source = "content"
	SourcePopularity    Source = "popularity"
)

// Strategy is the overall outcome of a recommendation pass.
type Strategy string

const (
	// StrategyHybrid means at least one collaborative or content candidate was found.
	StrategyHybrid Strategy = "hybrid"
	// StrategyPopularityFallback means both branches came back empty and the
	// list was filled by interaction popularity.
	StrategyPopularityFallback Strategy = "popularity_fallback"
)

// Recommendation is one annotated destination in a result list.
type Recommendation struct {
	Destination  *Destination `json:"destination"`
	Sources      []Source     `json:"sources"`
	ContentScore int          `json:"content_score"`
	Reason       string       `json:"reason"`
}

// HasSource reports whether s contributed this recommendation.
func (r *Recommendation) HasSource(s Source) bool {
	return slices.Contains(r.Sources, s)
}

// RecommendationResult is the full output of a recommendation pass.
type RecommendationResult struct {
	UserID      string            `json:"user_id"`
	Strategy    Strategy          `json:"strategy"`
	Items       []*Recommendation `json:"items"`
	GeneratedAt time.Time         `json:"generated_at"`
}
