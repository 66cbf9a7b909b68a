package models

import "time"

// Entry is one logged consumption event: a food, a saved meal, or water.
// The ID is the md5 hex digest of the user ID concatenated with the creation
// instant. Entries are append-only; nothing in this codebase updates or
// deletes one.
type Entry struct {
	ID           string    `gorm:"primaryKey;size:32"`
	UserID       string    `gorm:"index;size:100;not null"`
	CreatedAt    time.Time `gorm:"index;not null"`
	Name         string    `gorm:"size:100"`
	IsMeal       bool      `gorm:"not null;default:false"`
	IsWater      bool      `gorm:"not null;default:false"`
	Kilocalories int       `gorm:"not null"`
	FatGrams     int       `gorm:"not null"`
	CarbGrams    int       `gorm:"not null"`
	ProteinGrams int       `gorm:"not null"`
	WaterML      int       `gorm:"not null"`
}

// FoodRecord is per-100 g nutrition data for a single food, as resolved by
// the lookup layer outside this module. It is a value passed in, never
// persisted here.
type FoodRecord struct {
	Name         string
	Kilocalories int
	FatGrams     int
	CarbGrams    int
	ProteinGrams int
}
