package db

import (
	"errors"

	"github.com/vtereshina/munch/internal/models"
	"gorm.io/gorm"
)

type SavedMealRepository struct {
	database *gorm.DB
}

func NewSavedMealRepository(database *gorm.DB) *SavedMealRepository {
	return &SavedMealRepository{database: database}
}

func (repo *SavedMealRepository) FindByUserAndName(userID string, name string) (models.SavedMeal, bool, error) {
	var meal models.SavedMeal
	err := repo.database.First(&meal, "user_id = ? AND name = ?", userID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SavedMeal{}, false, nil
	}
	if err != nil {
		return models.SavedMeal{}, false, err
	}
	return meal, true, nil
}

func (repo *SavedMealRepository) Create(meal *models.SavedMeal) error {
	return repo.database.Create(meal).Error
}

func (repo *SavedMealRepository) ListByUser(userID string) ([]models.SavedMeal, error) {
	meals := make([]models.SavedMeal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
