package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileModel is the GORM-specific struct for the 'user_profiles' table.
// Preference lists are stored as JSONB arrays.
type ProfileModel struct {
	ID                   string                      `gorm:"type:text;primaryKey"`
	Name                 string                      `gorm:"type:text;not null;default:''"`
	Email                string                      `gorm:"type:text;not null;default:''"`
	PreferredCategories  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	PreferredDepartments datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	AgeRange             string                      `gorm:"type:text;not null;default:''"`
	TravelStyle          string                      `gorm:"type:text;not null;default:''"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}
