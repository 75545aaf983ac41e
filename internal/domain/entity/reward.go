package entity

import "time"

// Reward is an item users can exchange points for.
// CurrentRedemptions never decreases and never exceeds MaxRedemptions when the cap is set.
type Reward struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	PointsRequired     int        `json:"points_required"`
	Category           string     `json:"category"`
	PartnerName        string     `json:"partner_name"`
	PartnerContact     string     `json:"partner_contact"`
	IsActive           bool       `json:"is_active"`
	MaxRedemptions     *int       `json:"max_redemptions,omitempty"`
	CurrentRedemptions int        `json:"current_redemptions"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// IsAvailableAt reports whether the reward is active and not past its expiry.
func (r *Reward) IsAvailableAt(now time.Time) bool {
	if !r.IsActive {
		return false
	}

	return r.ExpiresAt == nil || now.Before(*r.ExpiresAt)
}

// HasCapacity reports whether one more redemption fits under the cap.
func (r *Reward) HasCapacity() bool {
	return r.MaxRedemptions == nil || r.CurrentRedemptions < *r.MaxRedemptions
}

// RedemptionStatus tracks the fulfillment state of a redemption.
type RedemptionStatus string

const (
	RedemptionActive  RedemptionStatus = "active"
	RedemptionUsed    RedemptionStatus = "used"
	RedemptionExpired RedemptionStatus = "expired"
)

// Redemption records one successful exchange of points for a reward.
type Redemption struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	RewardID       string           `json:"reward_id"`
	PointsSpent    int              `json:"points_spent"`
	Status         RedemptionStatus `json:"status"`
	PartnerContact string           `json:"partner_contact"`
	VoucherCode    string           `json:"voucher_code"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
