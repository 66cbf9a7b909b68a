package services

import (
	"github.com/vtereshina/munch/internal/security"
)

// Word lists for auto-generated display names of the
// "AnnoyingAggressiveAardvark" shape. Nobody registers here; the assistant
// only hands us an opaque token, so every account needs a pronounceable name
// to greet the user with.
var (
	usernameAdjectives = []string{
		"Annoying", "Aggressive", "Bashful", "Brave", "Cheerful", "Clumsy",
		"Crunchy", "Dapper", "Dizzy", "Eager", "Fancy", "Fearless", "Gentle",
		"Giddy", "Grumpy", "Hasty", "Hungry", "Jolly", "Jumpy", "Keen",
		"Lively", "Mellow", "Nimble", "Peckish", "Plucky", "Quirky", "Rowdy",
		"Sleepy", "Sneaky", "Spicy", "Sturdy", "Thirsty", "Wobbly", "Zesty",
	}
	usernameAnimals = []string{
		"Aardvark", "Badger", "Chamois", "Dingo", "Echidna", "Ferret",
		"Gecko", "Heron", "Ibex", "Jackal", "Kiwi", "Lemur", "Marmot",
		"Narwhal", "Ocelot", "Pangolin", "Quokka", "Raccoon", "Stoat",
		"Tapir", "Urchin", "Vole", "Wombat", "Yak", "Zebra",
	}
)

// GenerateUsername builds a display name from two adjectives and an animal.
// Collisions are possible and left to the unique index on users.name; callers
// retry with a fresh draw.
func GenerateUsername() (string, error) {
	first, err := security.RandomElement(usernameAdjectives)
	if err != nil {
		return "", err
	}
	second, err := security.RandomElement(usernameAdjectives)
	if err != nil {
		return "", err
	}
	animal, err := security.RandomElement(usernameAnimals)
	if err != nil {
		return "", err
	}
	return first + second + animal, nil
}
