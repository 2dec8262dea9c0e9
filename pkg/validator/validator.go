package validator

import (
	"strings"
	"unicode"
)

// SpecialCharacters is the set a password must draw at least one character
// from to satisfy the special-character rule.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Result holds the outcome of a password strength check. Messages lists
// every failed rule in rule order; an empty list means the password passed.
type Result struct {
	Valid    bool
	Messages []string
}

// ValidatePasswordStrength checks a candidate password against the vault's
// strength rules. Every rule is evaluated independently, so a weak password
// reports all of its problems at once. The check is a pure function of the
// input string.
func ValidatePasswordStrength(password string) Result {
	result := Result{Valid: true}

	fail := func(msg string) {
		result.Valid = false
		result.Messages = append(result.Messages, msg)
	}

	if len([]rune(password)) < 8 {
		fail("Password must be at least 8 characters long.")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(SpecialCharacters, r) {
			hasSpecial = true
		}
	}

	if !hasLower || !hasUpper {
		fail("Password must contain both uppercase and lowercase letters.")
	}
	if !hasDigit {
		fail("Password must contain at least one digit.")
	}
	if !hasSpecial {
		fail("Password must contain at least one special character (!@#$%^&*(), etc.).")
	}

	return result
}
