package models

import "time"

// SavedMeal is a per-user catalog entry for a meal the user composed once and
// logs by name afterwards. The ID is the md5 hex digest of the meal name
// concatenated with the user ID, so re-creating the same meal collides instead
// of duplicating.
type SavedMeal struct {
	ID           string `gorm:"primaryKey;size:32"`
	UserID       string `gorm:"index;size:100;not null"`
	Name         string `gorm:"size:100;not null"`
	Kilocalories int    `gorm:"not null"`
	FatGrams     int    `gorm:"not null"`
	CarbGrams    int    `gorm:"not null"`
	ProteinGrams int    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
