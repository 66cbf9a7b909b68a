package services

import (
	"math"

	"github.com/vtereshina/munch/internal/models"
	"github.com/vtereshina/munch/internal/security"
)

// MealBuilder accumulates foods into a saved meal for one user. Food records
// carry per-100 g figures; each added food is scaled by its serving size, with
// the user's default serving filling in when none is given. Running macro
// totals are kept as integer grams, rounded after each addition, matching how
// the rest of the system stores macros.
type MealBuilder struct {
	user models.User
	name string

	carbGrams    float64
	fatGrams     float64
	proteinGrams float64
}

func NewMealBuilder(name string, user models.User) *MealBuilder {
	return &MealBuilder{user: user, name: name}
}

// AddFood scales the per-100 g record by servingGrams and folds it into the
// meal. A serving of zero means the user's default serving size.
func (builder *MealBuilder) AddFood(food models.FoodRecord, servingGrams int) {
	if servingGrams == 0 {
		servingGrams = builder.user.ServingSize
	}
	scale := float64(servingGrams) / 100

	builder.proteinGrams = math.Round(builder.proteinGrams + float64(food.ProteinGrams)*scale)
	builder.carbGrams = math.Round(builder.carbGrams + float64(food.CarbGrams)*scale)
	builder.fatGrams = math.Round(builder.fatGrams + float64(food.FatGrams)*scale)
}

// Build produces the catalog row. The ID is derived from the meal name and
// the owner, so rebuilding the same meal yields the same identifier, and the
// kilocalories come from the final macros.
func (builder *MealBuilder) Build() models.SavedMeal {
	carb := int(builder.carbGrams)
	fat := int(builder.fatGrams)
	protein := int(builder.proteinGrams)

	return models.SavedMeal{
		ID:           security.HashString(builder.name + builder.user.ID),
		UserID:       builder.user.ID,
		Name:         builder.name,
		FatGrams:     fat,
		CarbGrams:    carb,
		ProteinGrams: protein,
		Kilocalories: CaloriesFromMacros(carb, fat, protein),
	}
}
