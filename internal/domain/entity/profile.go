// Package entity contains the core business objects of the project.
package entity

import "time"

// UserProfile holds the stated travel preferences of a user.
// A profile is read-only for the duration of a scoring pass; it changes only through a full replace.
type UserProfile struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PreferredCategories  []string  `json:"preferred_categories"`
	PreferredDepartments []string  `json:"preferred_departments"`
	AgeRange             string    `json:"age_range"`
	TravelStyle          string    `json:"travel_style"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
