package db

import (
	"time"

	"github.com/vtereshina/munch/internal/models"
	"gorm.io/gorm"
)

// EntryRepository is the append-only entry log. There is deliberately no
// update or delete here.
type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) Create(entry *models.Entry) error {
	return repo.database.Create(entry).Error
}

func (repo *EntryRepository) ListByUser(userID string) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) ListByUserWindow(userID string, start time.Time, end time.Time) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
