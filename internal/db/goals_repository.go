package db

import (
	"errors"

	"github.com/vtereshina/munch/internal/models"
	"gorm.io/gorm"
)

type GoalsRepository struct {
	database *gorm.DB
}

func NewGoalsRepository(database *gorm.DB) *GoalsRepository {
	return &GoalsRepository{database: database}
}

func (repo *GoalsRepository) FindByUserID(userID string) (models.Goals, bool, error) {
	var goals models.Goals
	err := repo.database.First(&goals, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Goals{}, false, nil
	}
	if err != nil {
		return models.Goals{}, false, err
	}
	return goals, true, nil
}

func (repo *GoalsRepository) Create(goals *models.Goals) error {
	return repo.database.Create(goals).Error
}

func (repo *GoalsRepository) Save(goals *models.Goals) error {
	return repo.database.Save(goals).Error
}
