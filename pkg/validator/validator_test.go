package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		valid       bool
		numMessages int
	}{
		{"strong password", "Password123!", true, 0},
		{"strong with other special", `Str0ng?pass`, true, 0},
		{"too short but otherwise strong", "Pa1!", false, 1},
		{"missing uppercase", "password123!", false, 1},
		{"missing lowercase", "PASSWORD123!", false, 1},
		{"missing digit", "Password!!!", false, 1},
		{"missing special", "Password123", false, 1},
		{"long but lowercase only", "weakpassword", false, 3},
		{"fails everything", "pw", false, 4},
		{"empty", "", false, 4},
		{"special char outside the set", "Password123~", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidatePasswordStrength(tt.password)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Len(t, result.Messages, tt.numMessages)
		})
	}
}

func TestValidateIsPure(t *testing.T) {
	first := ValidatePasswordStrength("weakpw")
	second := ValidatePasswordStrength("weakpw")
	assert.Equal(t, first, second)
}

func TestValidateUnicode(t *testing.T) {
	// Non-ASCII letters still count for case classes
	result := ValidatePasswordStrength("Żółwik11!")
	assert.True(t, result.Valid, "messages: %v", result.Messages)
}
