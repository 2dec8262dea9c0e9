package models

// Credential represents a stored site credential. Password holds the
// cleartext only on the application side of the vault boundary; storage
// only ever sees the encrypted blob.
type Credential struct {
	Website  string
	Email    string
	Password string
}

// AdminUser represents the single administrative account.
type AdminUser struct {
	Username     string
	PasswordHash string
}
