package services

import (
	"errors"
	"time"

	"github.com/vtereshina/munch/internal/models"
	"github.com/vtereshina/munch/internal/security"
)

// ErrUsernameExhausted means repeated draws kept colliding with existing
// display names. With the word lists this practically never happens.
var ErrUsernameExhausted = errors.New("could not draw an unused username")

const usernameDrawAttempts = 5

// AccountUserRepository is the user-store surface provisioning needs.
type AccountUserRepository interface {
	FindByID(userID string) (models.User, bool, error)
	Create(user *models.User) error
	NameExists(name string) (bool, error)
}

// AccountGoalsRepository is the goals-store surface provisioning needs.
type AccountGoalsRepository interface {
	FindByUserID(userID string) (models.Goals, bool, error)
	Create(goals *models.Goals) error
}

// AccountService provisions accounts on first contact. Every request path
// passes through here with the client token; the implicit global
// get-or-create of the old system is exactly this, made an explicit
// collaborator.
type AccountService struct {
	users AccountUserRepository
	goals AccountGoalsRepository
}

func NewAccountService(users AccountUserRepository, goals AccountGoalsRepository) *AccountService {
	return &AccountService{users: users, goals: goals}
}

// FindOrCreateByToken loads the user and goals for an opaque client token,
// creating both with defaults on first contact. The boolean reports whether
// the account was created by this call.
func (service *AccountService) FindOrCreateByToken(token string, now time.Time) (models.User, models.Goals, bool, error) {
	user, found, err := service.users.FindByID(token)
	if err != nil {
		return models.User{}, models.Goals{}, false, err
	}

	created := false
	if !found {
		user, err = service.createUser(token, now)
		if err != nil {
			return models.User{}, models.Goals{}, false, err
		}
		created = true
	}

	goals, found, err := service.goals.FindByUserID(token)
	if err != nil {
		return models.User{}, models.Goals{}, false, err
	}
	if !found {
		goals = DefaultGoals(token)
		if err := service.goals.Create(&goals); err != nil {
			return models.User{}, models.Goals{}, false, err
		}
	}

	return user, goals, created, nil
}

func (service *AccountService) createUser(token string, now time.Time) (models.User, error) {
	name, err := service.drawUnusedUsername()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:          token,
		Name:        name,
		ServingSize: models.DefaultServingSize,
		Score:       0,
		Streak:      models.InitialStreak,
		LastCheckin: now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AccountService) drawUnusedUsername() (string, error) {
	for attempt := 0; attempt < usernameDrawAttempts; attempt++ {
		name, err := GenerateUsername()
		if err != nil {
			return "", err
		}
		taken, err := service.users.NameExists(name)
		if err != nil {
			return "", err
		}
		if !taken {
			return name, nil
		}
	}
	return "", ErrUsernameExhausted
}

// DefaultGoals builds the targets a new account starts with. The record ID is
// the md5 of the user ID; kilocalories are derived from the macro targets.
func DefaultGoals(userID string) models.Goals {
	return models.Goals{
		ID:           security.HashString(userID),
		UserID:       userID,
		WaterML:      models.DefaultWaterGoalML,
		ProteinGrams: models.DefaultProteinGoalGrams,
		FatGrams:     models.DefaultFatGoalGrams,
		CarbGrams:    models.DefaultCarbGoalGrams,
		Kilocalories: CaloriesFromMacros(models.DefaultCarbGoalGrams, models.DefaultFatGoalGrams, models.DefaultProteinGoalGrams),
	}
}
