package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage creates an initialized SQLite store under a per-test
// temporary directory.
func setupTestStorage(t *testing.T) StorageService {
	t.Helper()

	store := NewStorageService(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, store.Initialize())
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestUpsertCredentialIsCaseInsensitive(t *testing.T) {
	store := setupTestStorage(t)

	require.NoError(t, store.UpsertCredential("Example.com", "first@example.com", "blob-1"))
	require.NoError(t, store.UpsertCredential("example.com", "second@example.com", "blob-2"))

	creds, err := store.ListCredentials()
	require.NoError(t, err)
	require.Len(t, creds, 1, "expected the second save to overwrite the first")

	cred, err := store.GetCredential("EXAMPLE.COM")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "second@example.com", cred.Email)
	assert.Equal(t, "blob-2", cred.Password)
}

func TestGetCredentialAbsent(t *testing.T) {
	store := setupTestStorage(t)

	cred, err := store.GetCredential("nosuch.com")
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestDeleteCredentialReportsExistence(t *testing.T) {
	store := setupTestStorage(t)
	require.NoError(t, store.UpsertCredential("example.com", "user@example.com", "blob"))

	existed, err := store.DeleteCredential("EXAMPLE.com")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = store.DeleteCredential("example.com")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestAdminUserRoundTrip(t *testing.T) {
	store := setupTestStorage(t)

	admin, err := store.GetAdminUser()
	require.NoError(t, err)
	assert.Nil(t, admin, "fresh store should have no admin user")

	require.NoError(t, store.PutAdminUser("admin", "hash-1"))
	require.NoError(t, store.PutAdminUser("admin", "hash-2"))

	admin, err = store.GetAdminUser()
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "hash-2", admin.PasswordHash, "put should overwrite, not duplicate")
}

func TestConfigRoundTrip(t *testing.T) {
	store := setupTestStorage(t)

	value, err := store.GetConfig("setup_complete")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SetConfig("setup_complete", "1"))

	value, err = store.GetConfig("setup_complete")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}
