package entity

import "time"

// Action is the kind of engagement a user had with a destination.
type Action string

const (
	// ActionView is recorded when a user opens a destination.
	ActionView Action = "view"
	// ActionLike is recorded when a user likes a destination.
	ActionLike Action = "like"
	// ActionSave is recorded when a user saves a destination for later.
	ActionSave Action = "save"
)

// String returns the string representation of the Action.
func (a Action) String() string {
	return string(a)
}

// IsValid checks if the Action is a known value.
func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionLike, ActionSave:
		return true
	default:
		return false
	}
}

// Interaction is an append-only engagement event. Repeated events for the same
// (user, destination) pair are all kept and all counted.
type Interaction struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	DestinationID string    `json:"destination_id"`
	Action        Action    `json:"action"`
	Timestamp     time.Time `json:"timestamp"`
}
