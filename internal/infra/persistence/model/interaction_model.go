package model

import "time"

// InteractionModel is the GORM-specific struct for the append-only 'user_interactions' table.
// Seq is assigned by the database and orders rows by insertion.
type InteractionModel struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	Seq           int64     `gorm:"column:seq;->"`
	UserID        string    `gorm:"type:text;not null;index"`
	DestinationID string    `gorm:"type:text;not null;index"`
	Action        string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"column:occurred_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (InteractionModel) TableName() string {
	return "user_interactions"
}
