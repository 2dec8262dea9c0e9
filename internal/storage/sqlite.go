package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lukaszwutkowski/PasswordManager/pkg/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage implements StorageService using SQLite
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// newSQLiteStorage creates a new SQLite storage service
func newSQLiteStorage(dbPath string) *SQLiteStorage {
	return &SQLiteStorage{
		dbPath: dbPath,
	}
}

// Initialize initializes the database connection and tables
func (s *SQLiteStorage) Initialize() error {
	if dir := filepath.Dir(s.dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.initializeSchema()
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// UpsertCredential inserts or overwrites the record for a site. The NOCASE
// primary key makes the replace fire for any casing of an existing site.
func (s *SQLiteStorage) UpsertCredential(website, email, ciphertext string) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO credentials (website, email, password)
		VALUES (?, ?, ?)
	`, website, email, ciphertext)
	return err
}

// GetCredential retrieves a credential by site name
func (s *SQLiteStorage) GetCredential(website string) (*models.Credential, error) {
	var cred models.Credential
	err := s.db.QueryRow(`
		SELECT website, email, password FROM credentials WHERE website = ?
	`, website).Scan(&cred.Website, &cred.Email, &cred.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}

// ListCredentials retrieves all credential records
func (s *SQLiteStorage) ListCredentials() ([]models.Credential, error) {
	rows, err := s.db.Query(`
		SELECT website, email, password FROM credentials ORDER BY website
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []models.Credential
	for rows.Next() {
		var cred models.Credential
		if err := rows.Scan(&cred.Website, &cred.Email, &cred.Password); err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteCredential deletes a credential, reporting whether it existed
func (s *SQLiteStorage) DeleteCredential(website string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM credentials WHERE website = ?", website)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetAdminUser retrieves the administrative account
func (s *SQLiteStorage) GetAdminUser() (*models.AdminUser, error) {
	var user models.AdminUser
	err := s.db.QueryRow(`
		SELECT username, password FROM users WHERE username = 'admin'
	`).Scan(&user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// PutAdminUser inserts or overwrites the administrative account
func (s *SQLiteStorage) PutAdminUser(username, passwordHash string) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO users (username, password) VALUES (?, ?)
	`, username, passwordHash)
	return err
}

// GetConfig retrieves a config value
func (s *SQLiteStorage) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetConfig inserts or overwrites a config value
func (s *SQLiteStorage) SetConfig(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)", key, value)
	return err
}
