package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var errEmptyWordList = errors.New("word list must not be empty")

// RandomElement returns a uniformly chosen element of words, using an unbiased
// crypto/rand draw.
func RandomElement(words []string) (string, error) {
	if len(words) == 0 {
		return "", errEmptyWordList
	}

	position, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", err
	}
	return words[position.Int64()], nil
}
