package storage

import "github.com/Lukaszwutkowski/PasswordManager/pkg/models"

// StorageService defines the interface for database operations
type StorageService interface {
	// Initialize initializes the storage service
	Initialize() error

	// Close closes the storage connection
	Close() error

	// UpsertCredential inserts or overwrites the record for a site.
	// Site names are compared case-insensitively.
	UpsertCredential(website, email, ciphertext string) error

	// GetCredential retrieves a credential by site name (case-insensitive).
	// It returns nil when no record exists.
	GetCredential(website string) (*models.Credential, error)

	// ListCredentials retrieves all credential records with their
	// ciphertext in the Password field
	ListCredentials() ([]models.Credential, error)

	// DeleteCredential deletes a credential, reporting whether it existed
	DeleteCredential(website string) (bool, error)

	// GetAdminUser retrieves the administrative account, or nil if the
	// vault has never been initialized
	GetAdminUser() (*models.AdminUser, error)

	// PutAdminUser inserts or overwrites the administrative account
	PutAdminUser(username, passwordHash string) error

	// GetConfig retrieves a config value, or "" if the key is absent
	GetConfig(key string) (string, error)

	// SetConfig inserts or overwrites a config value
	SetConfig(key, value string) error
}

// NewStorageService creates a new instance of the default storage service
func NewStorageService(dbPath string) StorageService {
	return newSQLiteStorage(dbPath)
}
