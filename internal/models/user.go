package models

import "time"

const (
	// DefaultServingSize is the serving, in grams, assumed for any food the
	// user logs without an explicit amount.
	DefaultServingSize = 100

	// InitialStreak is the streak a freshly provisioned account starts with:
	// first contact counts as the first consecutive day.
	InitialStreak = 1
)

// User is one account, keyed by the opaque client token the assistant hands
// us. Score, Streak and LastCheckin change together on every logging event and
// are never written from anywhere else.
type User struct {
	ID          string    `gorm:"primaryKey;size:100"`
	Name        string    `gorm:"uniqueIndex;size:150;not null"`
	ServingSize int       `gorm:"not null;default:100"`
	Score       int       `gorm:"not null;default:0"`
	Streak      int       `gorm:"not null;default:1"`
	LastCheckin time.Time `gorm:"not null"`
	Timezone    string    `gorm:"size:64"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location resolves the user's IANA timezone, falling back to UTC when the
// field is empty or unparseable.
func (user User) Location() *time.Location {
	if user.Timezone == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
