package models

import "time"

// Default daily targets applied when an account is provisioned on first
// contact. Kilocalories are always derived from the macro targets, never set
// independently.
const (
	DefaultWaterGoalML      = 3500
	DefaultProteinGoalGrams = 50
	DefaultFatGoalGrams     = 70
	DefaultCarbGoalGrams    = 310
)

// Goals holds one user's daily macro and water targets. One row per user.
// Kilocalories must equal CaloriesFromMacros over the three macro fields;
// anything that changes a macro target recomputes it.
type Goals struct {
	ID           string `gorm:"primaryKey;size:32"`
	UserID       string `gorm:"uniqueIndex;size:100;not null"`
	WaterML      int    `gorm:"not null"`
	ProteinGrams int    `gorm:"not null"`
	FatGrams     int    `gorm:"not null"`
	CarbGrams    int    `gorm:"not null"`
	Kilocalories int    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
