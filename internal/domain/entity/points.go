package entity

import "time"

// TransactionType classifies a ledger entry by the event that produced it.
type TransactionType string

const (
	TransactionInteractionView      TransactionType = "interaction_view"
	TransactionInteractionLike      TransactionType = "interaction_like"
	TransactionInteractionSave      TransactionType = "interaction_save"
	TransactionDestinationSubmitted TransactionType = "destination_submitted"
	TransactionDestinationApproved  TransactionType = "destination_approved"
	TransactionRedeemReward         TransactionType = "redeem_reward"
)

// Fixed awards for upstream events. Saves carry a caller-supplied amount and
// redemptions debit the reward's cost, so neither has an entry here.
const (
	PointsForView                = 1
	PointsForLike                = 3
	PointsForDestinationSubmit   = 5
	PointsForDestinationApproval = 15
)

// PointTransaction is an immutable ledger entry. A user's balance is the sum of
// the Points of all their transactions and is never stored anywhere else.
type PointTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Points      int             `json:"points"`
	Type        TransactionType `json:"transaction_type"`
	Description string          `json:"description"`
	ReferenceID *string         `json:"reference_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PointsForAction returns the fixed award for view and like actions.
// Saves are not fixed; ok is false for them.
func PointsForAction(action Action) (points int, txType TransactionType, ok bool) {
	switch action {
	case ActionView:
		return PointsForView, TransactionInteractionView, true
	case ActionLike:
		return PointsForLike, TransactionInteractionLike, true
	case ActionSave:
		return 0, TransactionInteractionSave, false
	default:
		return 0, "", false
	}
}
