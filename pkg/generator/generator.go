package generator

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/Lukaszwutkowski/PasswordManager/pkg/validator"
)

// ErrLengthTooShort is returned when the requested length cannot satisfy
// the vault's strength rules.
var ErrLengthTooShort = errors.New("generator: password length must be at least 8 characters")

// Character sets. The symbol set is the validator's, so generated passwords
// satisfy the strength gate by construction.
const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numbers   = "0123456789"
	symbols   = validator.SpecialCharacters
)

// Generate creates a strong random password of the requested length. The
// result always contains at least one lowercase letter, one uppercase
// letter, one digit and one symbol; their positions are randomized by a
// final shuffle. All randomness comes from crypto/rand, since generated
// values are used as real secrets.
func Generate(length int) (string, error) {
	if length < 8 {
		return "", ErrLengthTooShort
	}

	classes := []string{lowercase, uppercase, numbers, symbols}
	all := lowercase + uppercase + numbers + symbols

	password := make([]byte, 0, length)

	// One character from each class up front
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fill the rest from the combined alphabet
	for len(password) < length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates shuffle so the guaranteed characters are not
	// predictably placed at the front
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// randomChar picks a uniform random character from the set
func randomChar(set string) (byte, error) {
	idx, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// randomInt generates a cryptographically secure random integer between 0 and max-1
func randomInt(max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
