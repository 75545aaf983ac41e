package model

import "time"

// SubmissionModel is the GORM-specific struct for the 'destination_submissions' table.
type SubmissionModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	UserID       string `gorm:"type:text;not null;index"`
	Name         string `gorm:"type:text;not null"`
	Category     string `gorm:"type:text;not null"`
	Department   string `gorm:"type:text;not null"`
	Municipality string `gorm:"type:text;not null;default:''"`
	Description  string `gorm:"type:text;not null;default:''"`
	Status       string `gorm:"type:text;not null;index"`
	CreatedAt    time.Time
	ReviewedAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "destination_submissions"
}
