package service

import (
	"context"
	"time"
)

// EventType names a gamification event published after a state change commits.
type EventType string

const (
	EventPointsCredited     EventType = "points.credited"
	EventRewardRedeemed     EventType = "reward.redeemed"
	EventSubmissionCreated  EventType = "destination.submitted"
	EventSubmissionReviewed EventType = "destination.reviewed"
	EventPreferencesUpdated EventType = "preferences.updated"
)

// GamificationEvent is the payload pushed to the message broker
type GamificationEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        EventType      `json:"type"`
	UserID      string         `json:"user_id"`
	ReferenceID string         `json:"reference_id,omitempty"`
	Points      int            `json:"points,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event. Callers treat failures as best effort.
	Publish(ctx context.Context, event *GamificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
