package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Goals      *GoalsRepository
	Entries    *EntryRepository
	SavedMeals *SavedMealRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Goals:      NewGoalsRepository(database),
		Entries:    NewEntryRepository(database),
		SavedMeals: NewSavedMealRepository(database),
	}
}
