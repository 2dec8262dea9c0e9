package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Blob layout before text encoding:
//
//	version(1) || unix-timestamp-be(8) || nonce(12) || gcm(ciphertext || tag)
//
// The version byte and timestamp are bound to the ciphertext as GCM
// additional data, so rewriting either fails authentication. The timestamp
// records when the blob was produced; it is not an expiry.
const (
	blobVersion    = 0x01
	blobHeaderSize = 1 + 8
)

// KeySize is the required length of the symmetric key in bytes (AES-256).
const KeySize = 32

// aesCipherService implements CipherService using AES-256-GCM
type aesCipherService struct {
	aead cipher.AEAD
}

func newAESCipherService(key []byte) (*aesCipherService, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("crypto: key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &aesCipherService{aead: gcm}, nil
}

// Encrypt encrypts a string into a versioned, authenticated, base64-encoded
// blob. Output is non-deterministic: every call draws a fresh nonce.
func (s *aesCipherService) Encrypt(plaintext string) (string, error) {
	header := make([]byte, blobHeaderSize)
	header[0] = blobVersion
	binary.BigEndian.PutUint64(header[1:], uint64(time.Now().Unix()))

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	blob := make([]byte, 0, blobHeaderSize+len(nonce)+len(plaintext)+s.aead.Overhead())
	blob = append(blob, header...)
	blob = append(blob, nonce...)
	blob = s.aead.Seal(blob, nonce, []byte(plaintext), header)

	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decrypt decrypts a blob produced by Encrypt. Parse failures return
// ErrFormat; authentication failures return ErrIntegrity. No partial
// plaintext is ever returned.
func (s *aesCipherService) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if len(blob) < blobHeaderSize+s.aead.NonceSize() {
		return "", fmt.Errorf("%w: blob too short", ErrFormat)
	}
	if blob[0] != blobVersion {
		return "", fmt.Errorf("%w: unknown version %#x", ErrFormat, blob[0])
	}

	header := blob[:blobHeaderSize]
	nonce := blob[blobHeaderSize : blobHeaderSize+s.aead.NonceSize()]
	body := blob[blobHeaderSize+s.aead.NonceSize():]

	plaintext, err := s.aead.Open(nil, nonce, body, header)
	if err != nil {
		return "", ErrIntegrity
	}

	return string(plaintext), nil
}
