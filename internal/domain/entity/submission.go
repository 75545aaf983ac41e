package entity

import "time"

// SubmissionStatus is the moderation state of a user-submitted destination.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// IsValid checks if the SubmissionStatus is a known value.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	default:
		return false
	}
}

// DestinationSubmission is a destination proposed by a user and awaiting moderation.
type DestinationSubmission struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Department   string           `json:"department"`
	Municipality string           `json:"municipality"`
	Description  string           `json:"description"`
	Status       SubmissionStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	ReviewedAt   *time.Time       `json:"reviewed_at,omitempty"`
}
