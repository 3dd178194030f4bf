package fidelius

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/winter-telescope/winterapi/internal/configs"
	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

const nonceSize = 24

// Store is the encrypted persistence layer for the credential set. The
// symmetric key lives in the platform keyring; the ciphertext lives in a
// single file that is always rewritten in full.
type Store struct {
	Service     string
	Account     string
	Path        string
	LockPath    string
	LockTimeout time.Duration

	keyring Keyring
}

// NewStore builds a store from explicit settings. Passing paths in rather
// than reading globals keeps each test isolated in its own temp directory.
func NewStore(settings *configs.KeeperSettings, kr Keyring) *Store {
	return &Store{
		Service:     settings.KeyringService,
		Account:     settings.KeyringAccount,
		Path:        settings.SecretsPath,
		LockPath:    settings.LockPath(),
		LockTimeout: settings.LockTimeout,
		keyring:     kr,
	}
}

// EncryptionKey returns the 32-byte symmetric key for this store, generating
// and persisting a fresh one in the keyring on first use.
func (s *Store) EncryptionKey() ([32]byte, error) {
	var key [32]byte

	encoded, err := s.keyring.Get(s.Service, s.Account)
	if errors.Is(err, ErrKeyringEntryMissing) {
		raw := make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return key, fmt.Errorf("failed to generate encryption key: %w", err)
		}
		encoded = base64.URLEncoding.EncodeToString(raw)
		if err := s.keyring.Set(s.Service, s.Account, encoded); err != nil {
			return key, fmt.Errorf("failed to store encryption key: %w", werrors.ErrKeystoreUnavailable)
		}
		copy(key[:], raw)
		return key, nil
	}
	if err != nil {
		return key, fmt.Errorf("failed to read encryption key: %w", werrors.ErrKeystoreUnavailable)
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil || len(raw) != 32 {
		return key, fmt.Errorf("stored encryption key is malformed: %w", werrors.ErrDecryptFailed)
	}
	copy(key[:], raw)
	return key, nil
}

// Encrypt seals the plaintext under the store's key. A fresh nonce is drawn
// per call and prepended to the ciphertext, so two calls with identical
// plaintext never produce identical output.
func (s *Store) Encrypt(plaintext string) ([]byte, error) {
	key, err := s.EncryptionKey()
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &key), nil
}

// Decrypt opens ciphertext produced by Encrypt. A mismatched key or mangled
// ciphertext is surfaced as ErrDecryptFailed, never as empty data.
func (s *Store) Decrypt(ciphertext []byte) (string, error) {
	key, err := s.EncryptionKey()
	if err != nil {
		return "", err
	}

	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("ciphertext shorter than nonce: %w", werrors.ErrDecryptFailed)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &key)
	if !ok {
		return "", werrors.ErrDecryptFailed
	}
	return string(plaintext), nil
}

// ReadAll loads and decrypts the credential set. A missing file means an
// empty set; an unreadable file is an error the caller must see.
func (s *Store) ReadAll() (Credentials, error) {
	creds := Credentials{Programs: map[string]Program{}}

	ciphertext, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return creds, nil
	}
	if err != nil {
		return creds, fmt.Errorf("failed to read secrets file %s: %w", s.Path, err)
	}

	plaintext, err := s.Decrypt(ciphertext)
	if err != nil {
		return creds, err
	}

	if err := json.Unmarshal([]byte(plaintext), &creds); err != nil {
		return creds, fmt.Errorf("%v: %w", err, werrors.ErrCorruptStore)
	}
	if creds.Programs == nil {
		creds.Programs = map[string]Program{}
	}
	return creds, nil
}

// WriteAll serializes, encrypts and replaces the whole secrets file. There
// are no partial writes; every write is the full blob.
func (s *Store) WriteAll(creds Credentials) error {
	plaintext, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	ciphertext, err := s.Encrypt(string(plaintext))
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.Path, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write secrets file %s: %w", s.Path, err)
	}
	return nil
}

// Clear removes the secrets file and the keyring entry. Both removals are
// no-ops when already absent, so Clear is idempotent.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove secrets file %s: %w", s.Path, err)
	}
	return s.keyring.Delete(s.Service, s.Account)
}
