package storage

// initializeSchema sets up the necessary database tables
func (s *SQLiteStorage) initializeSchema() error {
	// Site credentials. COLLATE NOCASE on the primary key gives the
	// case-folded uniqueness invariant: "Example.com" and "example.com"
	// address the same row.
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS credentials (
			website TEXT PRIMARY KEY COLLATE NOCASE,
			email TEXT NOT NULL,
			password TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Administrative account
	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Vault settings, e.g. the setup-complete flag
	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS config (
			key TEXT PRIMARY KEY,
			value TEXT
		)
	`)
	return err
}
