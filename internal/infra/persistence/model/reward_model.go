package model

import "time"

// RewardModel is the GORM-specific struct for the 'rewards' table.
// A check constraint keeps current_redemptions within max_redemptions.
type RewardModel struct {
	ID                 string `gorm:"type:text;primaryKey"`
	Title              string `gorm:"type:text;not null"`
	Description        string `gorm:"type:text;not null;default:''"`
	PointsRequired     int    `gorm:"not null"`
	Category           string `gorm:"type:text;not null;default:''"`
	PartnerName        string `gorm:"type:text;not null;default:''"`
	PartnerContact     string `gorm:"type:text;not null;default:''"`
	IsActive           bool   `gorm:"not null;default:true"`
	MaxRedemptions     *int
	CurrentRedemptions int `gorm:"not null;default:0"`
	ExpiresAt          *time.Time
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}

// RedemptionModel is the GORM-specific struct for the 'redemptions' table.
type RedemptionModel struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	UserID         string `gorm:"type:text;not null;index"`
	RewardID       string `gorm:"type:text;not null;index"`
	PointsSpent    int    `gorm:"not null"`
	Status         string `gorm:"type:text;not null"`
	PartnerContact string `gorm:"type:text;not null;default:''"`
	VoucherCode    string `gorm:"type:text;not null;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
