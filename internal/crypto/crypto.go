package crypto

import "errors"

// Sentinel errors returned by cipher and key store operations.
var (
	// ErrIntegrity indicates that the authenticity tag on a ciphertext
	// blob failed to verify: tampering, corruption, or a wrong key.
	ErrIntegrity = errors.New("crypto: message authentication failed")

	// ErrFormat indicates a ciphertext blob that could not be parsed.
	ErrFormat = errors.New("crypto: malformed ciphertext blob")

	// ErrBadKeyFile indicates a key file with unusable content.
	ErrBadKeyFile = errors.New("crypto: key file content is malformed")
)

// CipherService defines the interface for authenticated encryption of
// stored secrets
type CipherService interface {
	// Encrypt encrypts plaintext into a self-contained printable blob
	Encrypt(plaintext string) (string, error)

	// Decrypt decrypts a blob produced by Encrypt. It returns ErrIntegrity
	// if authentication fails and ErrFormat if the blob cannot be parsed.
	Decrypt(ciphertext string) (string, error)
}

// PasswordHasher defines the interface for one-way credential hashing.
// Hashing is used only for login verification; nothing is ever recovered
// from a hash.
type PasswordHasher interface {
	// Hash computes a salted one-way hash of the password
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash. Malformed
	// hashes verify as false, never as an error.
	Verify(password, encoded string) bool
}

// NewCipherService creates the default AES-GCM cipher service for the
// provided 32-byte key.
func NewCipherService(key []byte) (CipherService, error) {
	return newAESCipherService(key)
}

// NewPasswordHasher creates the default bcrypt password hasher
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{}
}
