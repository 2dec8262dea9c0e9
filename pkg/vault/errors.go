package vault

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when an operation targets a site that has
	// no stored credential.
	ErrNotFound = errors.New("vault: website not found")

	// ErrMissingFields is returned when a required field is empty
	ErrMissingFields = errors.New("vault: website, email and password are all required")

	// ErrSetupRequired is returned while the vault still runs on the
	// bootstrap admin password. Every credential operation is disabled
	// until the admin password has been rotated.
	ErrSetupRequired = errors.New("vault: admin password must be set before the vault can be used")
)

// ValidationError reports a password that failed the strength gate,
// carrying one message per failed rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "vault: password is too weak: " + strings.Join(e.Messages, " ")
}
