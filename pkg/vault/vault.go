package vault

import (
	"fmt"
	"sync"

	"github.com/Lukaszwutkowski/PasswordManager/internal/crypto"
	"github.com/Lukaszwutkowski/PasswordManager/internal/logging"
	"github.com/Lukaszwutkowski/PasswordManager/internal/storage"
	"github.com/Lukaszwutkowski/PasswordManager/pkg/generator"
	"github.com/Lukaszwutkowski/PasswordManager/pkg/models"
	"github.com/Lukaszwutkowski/PasswordManager/pkg/validator"
)

const (
	// AdminUsername is the fixed name of the single administrative account
	AdminUsername = "admin"

	// defaultAdminPassword seeds the admin account on first run. It is
	// publicly known, which is why the vault refuses all credential
	// operations until it has been rotated.
	defaultAdminPassword = "admin123"

	setupCompleteKey = "setup_complete"
)

// Options configures a Vault
type Options struct {
	// DBPath is the SQLite database file
	DBPath string

	// KeyFile is the symmetric key file, created on first run.
	// Ignored when Key is set.
	KeyFile string

	// Key is an externally supplied 32-byte key overriding KeyFile
	Key []byte

	// Logger receives operation outcomes. Defaults to a nop logger.
	Logger logging.Logger
}

// Vault orchestrates validation, encryption and storage for every
// credential operation. It is safe for concurrent use: writes to the store
// are serialized, reads may run in parallel.
type Vault struct {
	mu      sync.RWMutex
	storage storage.StorageService
	cipher  crypto.CipherService
	hasher  crypto.PasswordHasher
	logger  logging.Logger

	setupDone bool
}

// New creates a Vault against the given storage and key material. On a
// fresh backend it seeds the admin account with the well-known bootstrap
// password; the vault then stays disabled until RotateAdminPassword is
// called (see SetupRequired).
func New(opts Options) (*Vault, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	key := opts.Key
	if key == nil {
		var err error
		key, err = crypto.LoadOrCreateKey(opts.KeyFile)
		if err != nil {
			return nil, err
		}
	}

	cipher, err := crypto.NewCipherService(key)
	if err != nil {
		return nil, err
	}

	store := storage.NewStorageService(opts.DBPath)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	v := &Vault{
		storage: store,
		cipher:  cipher,
		hasher:  crypto.NewPasswordHasher(),
		logger:  logger,
	}

	if err := v.ensureAdminUser(); err != nil {
		store.Close()
		return nil, err
	}

	return v, nil
}

// ensureAdminUser seeds the admin account on first run and loads the
// setup-complete flag.
func (v *Vault) ensureAdminUser() error {
	admin, err := v.storage.GetAdminUser()
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	if admin == nil {
		hash, err := v.hasher.Hash(defaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash bootstrap password: %w", err)
		}
		if err := v.storage.PutAdminUser(AdminUsername, hash); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		if err := v.storage.SetConfig(setupCompleteKey, "0"); err != nil {
			return err
		}
		v.logger.Warn("admin account created with bootstrap password; rotation required")
		return nil
	}

	flag, err := v.storage.GetConfig(setupCompleteKey)
	if err != nil {
		return err
	}
	v.setupDone = flag == "1"
	return nil
}

// SetupRequired reports whether the vault still runs on the bootstrap
// admin password. While true, every credential operation fails with
// ErrSetupRequired.
func (v *Vault) SetupRequired() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.setupDone
}

// SavePassword validates, encrypts and stores a credential. Saving a site
// that already exists overwrites its record.
func (v *Vault) SavePassword(website, email, password string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.setupDone {
		return ErrSetupRequired
	}
	if website == "" || email == "" || password == "" {
		v.logger.Error("save rejected: website, email or password is missing")
		return ErrMissingFields
	}

	if result := validator.ValidatePasswordStrength(password); !result.Valid {
		v.logger.Error("save rejected for " + website + ": password too weak")
		return &ValidationError{Messages: result.Messages}
	}

	ciphertext, err := v.cipher.Encrypt(password)
	if err != nil {
		return fmt.Errorf("failed to encrypt password: %w", err)
	}

	if err := v.storage.UpsertCredential(website, email, ciphertext); err != nil {
		v.logger.Error("failed to save password for " + website)
		return fmt.Errorf("failed to save credential: %w", err)
	}

	v.logger.Info("password for " + website + " saved")
	return nil
}

// GetPasswords retrieves and decrypts every stored credential. A record
// that fails to decrypt aborts the whole call: callers must be able to
// distinguish "no secrets" from "decryption failed".
func (v *Vault) GetPasswords() ([]models.Credential, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.setupDone {
		return nil, ErrSetupRequired
	}

	records, err := v.storage.ListCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	creds := make([]models.Credential, 0, len(records))
	for _, record := range records {
		plaintext, err := v.cipher.Decrypt(record.Password)
		if err != nil {
			v.logger.Error("failed to decrypt password for " + record.Website)
			return nil, fmt.Errorf("failed to decrypt password for %s: %w", record.Website, err)
		}
		record.Password = plaintext
		creds = append(creds, record)
	}

	v.logger.Info("retrieved all passwords")
	return creds, nil
}

// SearchPassword retrieves and decrypts the credential for a site.
// Site names match case-insensitively.
func (v *Vault) SearchPassword(website string) (models.Credential, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.setupDone {
		return models.Credential{}, ErrSetupRequired
	}

	record, err := v.storage.GetCredential(website)
	if err != nil {
		return models.Credential{}, fmt.Errorf("failed to search credential: %w", err)
	}
	if record == nil {
		v.logger.Warn("password for " + website + " not found")
		return models.Credential{}, ErrNotFound
	}

	plaintext, err := v.cipher.Decrypt(record.Password)
	if err != nil {
		v.logger.Error("failed to decrypt password for " + website)
		return models.Credential{}, fmt.Errorf("failed to decrypt password for %s: %w", website, err)
	}
	record.Password = plaintext

	v.logger.Info("password for " + website + " retrieved")
	return *record, nil
}

// UpdatePassword re-validates and re-encrypts the password for an existing
// site. The stored email is untouched.
func (v *Vault) UpdatePassword(website, newPassword string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.setupDone {
		return ErrSetupRequired
	}

	if result := validator.ValidatePasswordStrength(newPassword); !result.Valid {
		v.logger.Error("update rejected for " + website + ": password too weak")
		return &ValidationError{Messages: result.Messages}
	}

	record, err := v.storage.GetCredential(website)
	if err != nil {
		return fmt.Errorf("failed to look up credential: %w", err)
	}
	if record == nil {
		v.logger.Warn("update failed: " + website + " not found")
		return ErrNotFound
	}

	ciphertext, err := v.cipher.Encrypt(newPassword)
	if err != nil {
		return fmt.Errorf("failed to encrypt password: %w", err)
	}

	if err := v.storage.UpsertCredential(record.Website, record.Email, ciphertext); err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	v.logger.Info("password for " + website + " updated")
	return nil
}

// DeletePassword removes the credential for a site
func (v *Vault) DeletePassword(website string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.setupDone {
		return ErrSetupRequired
	}

	existed, err := v.storage.DeleteCredential(website)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	if !existed {
		v.logger.Warn("delete failed: " + website + " not found")
		return ErrNotFound
	}

	v.logger.Info("password for " + website + " deleted")
	return nil
}

// ValidateLogin verifies the admin credentials. An unknown username or a
// wrong password both come back false, nil.
func (v *Vault) ValidateLogin(username, password string) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	admin, err := v.storage.GetAdminUser()
	if err != nil {
		return false, fmt.Errorf("failed to look up admin user: %w", err)
	}
	if admin == nil || admin.Username != username {
		return false, nil
	}

	ok := v.hasher.Verify(password, admin.PasswordHash)
	if !ok {
		v.logger.Warn("failed login attempt for " + username)
	}
	return ok, nil
}

// RotateAdminPassword validates and stores a new admin password. The first
// rotation completes the vault's setup and enables credential operations.
func (v *Vault) RotateAdminPassword(newPassword string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if result := validator.ValidatePasswordStrength(newPassword); !result.Valid {
		return &ValidationError{Messages: result.Messages}
	}

	hash, err := v.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := v.storage.PutAdminUser(AdminUsername, hash); err != nil {
		return fmt.Errorf("failed to store admin password: %w", err)
	}
	if err := v.storage.SetConfig(setupCompleteKey, "1"); err != nil {
		return err
	}

	v.setupDone = true
	v.logger.Info("admin password updated")
	return nil
}

// GeneratePassword creates a strong random password that passes the
// strength gate.
func (v *Vault) GeneratePassword(length int) (string, error) {
	return generator.Generate(length)
}

// Close releases the underlying storage
func (v *Vault) Close() error {
	v.logger.Info("vault closed")
	return v.storage.Close()
}
