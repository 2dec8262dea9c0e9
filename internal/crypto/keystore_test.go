package crypto

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateKeyFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "key.bin")

	key, err := LoadOrCreateKey(path)
	if err != nil {
		t.Fatalf("LoadOrCreateKey: %v", err)
	}
	if len(key) != KeySize {
		t.Fatalf("key length %d, want %d", len(key), KeySize)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("key file not written: %v", err)
	}
	if !bytes.Equal(onDisk, key) {
		t.Fatal("persisted key differs from returned key")
	}
}

func TestLoadOrCreateKeyIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.bin")

	key1, err := LoadOrCreateKey(path)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	key2, err := LoadOrCreateKey(path)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !bytes.Equal(key1, key2) {
		t.Fatal("second load returned a different key")
	}
}

func TestLoadOrCreateKeyMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.bin")
	if err := os.WriteFile(path, []byte("short"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Malformed key files fail loudly; silently regenerating would orphan
	// every existing ciphertext.
	_, err := LoadOrCreateKey(path)
	if !errors.Is(err, ErrBadKeyFile) {
		t.Fatalf("got %v, want ErrBadKeyFile", err)
	}

	onDisk, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read: %v", readErr)
	}
	if string(onDisk) != "short" {
		t.Fatal("malformed key file was overwritten")
	}
}
