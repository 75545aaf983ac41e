package model

import "time"

// PointTransactionModel is the GORM-specific struct for the append-only 'point_transactions' ledger.
type PointTransactionModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"column:seq;->"`
	UserID      string    `gorm:"type:text;not null;index"`
	Points      int       `gorm:"not null"`
	Type        string    `gorm:"column:transaction_type;type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	ReferenceID *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PointTransactionModel) TableName() string {
	return "point_transactions"
}
