package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyz")

// Letters returns a cryptographically random string of n lowercase letters.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// ID returns an entity identifier with the given prefix, e.g. "case-qhxemzwvictr".
func ID(prefix string) (string, error) {
	const idLength = 12
	letters, err := Letters(idLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, letters), nil
}
