package services

import (
	"github.com/vtereshina/munch/internal/models"
)

// GoalsUpdate is a partial update over the four goal dimensions. Nil fields
// keep their current value.
type GoalsUpdate struct {
	WaterML      *int
	ProteinGrams *int
	FatGrams     *int
	CarbGrams    *int
}

// IsEmpty reports whether the update names no dimension at all.
func (update GoalsUpdate) IsEmpty() bool {
	return update.WaterML == nil && update.ProteinGrams == nil && update.FatGrams == nil && update.CarbGrams == nil
}

// GoalsWriter persists a changed goals row.
type GoalsWriter interface {
	Save(goals *models.Goals) error
}

type GoalService struct {
	goals GoalsWriter
}

func NewGoalService(goals GoalsWriter) *GoalService {
	return &GoalService{goals: goals}
}

// ApplyGoalsUpdate merges the partial update into the goals and recomputes
// the derived kilocalorie target. The recomputation happens unconditionally:
// the stored figure is never trusted to match the macros.
func ApplyGoalsUpdate(goals models.Goals, update GoalsUpdate) models.Goals {
	if update.WaterML != nil {
		goals.WaterML = *update.WaterML
	}
	if update.ProteinGrams != nil {
		goals.ProteinGrams = *update.ProteinGrams
	}
	if update.FatGrams != nil {
		goals.FatGrams = *update.FatGrams
	}
	if update.CarbGrams != nil {
		goals.CarbGrams = *update.CarbGrams
	}
	goals.Kilocalories = CaloriesFromMacros(goals.CarbGrams, goals.FatGrams, goals.ProteinGrams)
	return goals
}

// UpdateGoals applies a partial update and saves the result.
func (service *GoalService) UpdateGoals(goals models.Goals, update GoalsUpdate) (models.Goals, error) {
	updated := ApplyGoalsUpdate(goals, update)
	if err := service.goals.Save(&updated); err != nil {
		return models.Goals{}, err
	}
	return updated, nil
}
