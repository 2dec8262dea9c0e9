package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptHasher implements PasswordHasher using bcrypt. The salt is embedded
// in the encoded hash, so no separate salt storage is needed, and
// comparison is constant time.
type bcryptHasher struct{}

// Hash computes a salted bcrypt hash of the password
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the encoded hash. A corrupt
// stored hash is treated as "no password matches", not as a crash.
func (h *bcryptHasher) Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
