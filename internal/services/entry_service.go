package services

import (
	"math"
	"time"

	"github.com/vtereshina/munch/internal/models"
	"github.com/vtereshina/munch/internal/security"
)

// EntryAppender is the append-only side of the entry log.
type EntryAppender interface {
	Create(entry *models.Entry) error
}

// EntryService turns logging events into immutable entry rows. It only ever
// appends; recomputation downstream works from the log, so entries are never
// edited after the fact.
type EntryService struct {
	entries EntryAppender
}

func NewEntryService(entries EntryAppender) *EntryService {
	return &EntryService{entries: entries}
}

// LogFood appends a food entry, scaling the per-100 g record by the serving.
// A serving of zero means the user's default serving size.
func (service *EntryService) LogFood(user models.User, food models.FoodRecord, servingGrams int, now time.Time) (models.Entry, error) {
	if servingGrams == 0 {
		servingGrams = user.ServingSize
	}
	scale := float64(servingGrams) / 100

	fat := int(math.Round(float64(food.FatGrams) * scale))
	carb := int(math.Round(float64(food.CarbGrams) * scale))
	protein := int(math.Round(float64(food.ProteinGrams) * scale))

	entry := models.Entry{
		ID:           entryID(user.ID, now),
		UserID:       user.ID,
		CreatedAt:    now,
		Name:         food.Name,
		FatGrams:     fat,
		CarbGrams:    carb,
		ProteinGrams: protein,
		Kilocalories: CaloriesFromMacros(carb, fat, protein),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// LogSavedMeal appends an entry for a meal from the user's catalog.
func (service *EntryService) LogSavedMeal(user models.User, meal models.SavedMeal, now time.Time) (models.Entry, error) {
	entry := models.Entry{
		ID:           entryID(user.ID, now),
		UserID:       user.ID,
		CreatedAt:    now,
		Name:         meal.Name,
		IsMeal:       true,
		FatGrams:     meal.FatGrams,
		CarbGrams:    meal.CarbGrams,
		ProteinGrams: meal.ProteinGrams,
		Kilocalories: CaloriesFromMacros(meal.CarbGrams, meal.FatGrams, meal.ProteinGrams),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// LogWater appends a water-only entry.
func (service *EntryService) LogWater(user models.User, waterML int, now time.Time) (models.Entry, error) {
	entry := models.Entry{
		ID:        entryID(user.ID, now),
		UserID:    user.ID,
		CreatedAt: now,
		Name:      "water",
		IsWater:   true,
		WaterML:   waterML,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func entryID(userID string, now time.Time) string {
	return security.HashString(userID + now.Format(time.RFC3339Nano))
}
