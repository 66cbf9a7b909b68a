package db

import (
	"errors"
	"time"

	"github.com/vtereshina/munch/internal/models"
	"github.com/vtereshina/munch/internal/services"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, bool, error) {
	var user models.User
	err := repo.database.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (repo *UserRepository) NameExists(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where("name = ?", name).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

// ApplyCheckinUpdate writes last check-in, streak and score together, guarded
// by the last check-in value the caller read. A racing event that already
// moved last_checkin leaves zero rows affected, which surfaces as
// ErrCheckinConflict so the caller can re-read and retry.
func (repo *UserRepository) ApplyCheckinUpdate(userID string, expectedLastCheckin time.Time, newLastCheckin time.Time, newStreak int, newScore int) error {
	result := repo.database.Model(&models.User{}).
		Where("id = ? AND last_checkin = ?", userID, expectedLastCheckin).
		Updates(map[string]any{
			"last_checkin": newLastCheckin,
			"streak":       newStreak,
			"score":        newScore,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrCheckinConflict
	}
	return nil
}
