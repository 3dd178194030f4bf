package fidelius

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/winter-telescope/winterapi/internal/configs"
	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

func testSettings(t *testing.T) *configs.KeeperSettings {
	t.Helper()
	return &configs.KeeperSettings{
		KeyringService: "winterapi-test",
		KeyringAccount: "apisaltkey",
		SecretsPath:    filepath.Join(t.TempDir(), "secrets.txt"),
		LockTimeout:    5 * time.Second,
	}
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(testSettings(t), &MemoryKeyring{})
}

func TestEncryptionKeyGeneratedOnce(t *testing.T) {
	store := testStore(t)

	key1, err := store.EncryptionKey()
	if err != nil {
		t.Fatalf("EncryptionKey failed: %v", err)
	}

	key2, err := store.EncryptionKey()
	if err != nil {
		t.Fatalf("EncryptionKey failed on second call: %v", err)
	}

	if key1 != key2 {
		t.Error("Expected the same key on repeated calls")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	store := testStore(t)
	plaintext := `{"user":"alice","password":"hunter2","programs":{}}`

	first, err := store.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	second, err := store.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("Expected different ciphertext for repeated encryption of the same plaintext")
	}

	decrypted, err := store.Decrypt(first)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if decrypted != plaintext {
		t.Errorf("Expected plaintext %q, got %q", plaintext, decrypted)
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	store := testStore(t)

	ciphertext, err := store.Encrypt("secret data")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// A store with its own keyring derives a different key.
	other := NewStore(testSettings(t), &MemoryKeyring{})

	if _, err := other.Decrypt(ciphertext); !errors.Is(err, werrors.ErrDecryptFailed) {
		t.Fatalf("Expected ErrDecryptFailed, got %v", err)
	}
}

func TestDecryptTruncatedCiphertextFails(t *testing.T) {
	store := testStore(t)

	if _, err := store.Decrypt([]byte("short")); !errors.Is(err, werrors.ErrDecryptFailed) {
		t.Fatalf("Expected ErrDecryptFailed, got %v", err)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	store := testStore(t)

	creds, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if creds.User != nil {
		t.Error("Expected no user in a fresh store")
	}
	if creds.Programs == nil {
		t.Fatal("Expected a non-nil programs map")
	}
	if len(creds.Programs) != 0 {
		t.Errorf("Expected no programs, got %d", len(creds.Programs))
	}
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	store := testStore(t)

	user := "alice"
	password := "hunter2"
	creds := Credentials{
		User:     &user,
		Password: &password,
		Programs: map[string]Program{
			"2024A000": {
				Progname: "2024A000",
				ProgKey:  "key123",
				Extra: map[string]any{
					"pi_name":         "A. Observer",
					"hours_allocated": 12.5,
				},
			},
		},
	}

	if err := store.WriteAll(creds); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	loaded, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if loaded.User == nil || *loaded.User != user {
		t.Errorf("Expected user %q, got %v", user, loaded.User)
	}
	if loaded.Password == nil || *loaded.Password != password {
		t.Errorf("Expected password %q, got %v", password, loaded.Password)
	}

	program, ok := loaded.Programs["2024A000"]
	if !ok {
		t.Fatal("Expected program 2024A000 to survive the round trip")
	}
	if program.ProgKey != "key123" {
		t.Errorf("Expected prog_key %q, got %q", "key123", program.ProgKey)
	}
	if program.Extra["pi_name"] != "A. Observer" {
		t.Errorf("Expected opaque field pi_name to survive, got %v", program.Extra["pi_name"])
	}
}

func TestReadAllCorruptContentFails(t *testing.T) {
	store := testStore(t)

	ciphertext, err := store.Encrypt("this is not json")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if err := os.WriteFile(store.Path, ciphertext, 0600); err != nil {
		t.Fatalf("Failed to write secrets file: %v", err)
	}

	if _, err := store.ReadAll(); !errors.Is(err, werrors.ErrCorruptStore) {
		t.Fatalf("Expected ErrCorruptStore, got %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := testStore(t)

	user := "alice"
	if err := store.WriteAll(Credentials{User: &user, Programs: map[string]Program{}}); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, err := os.Stat(store.Path); !os.IsNotExist(err) {
		t.Error("Expected secrets file to be removed")
	}

	if _, err := store.keyring.Get(store.Service, store.Account); !errors.Is(err, ErrKeyringEntryMissing) {
		t.Error("Expected keyring entry to be removed")
	}

	// Second clear must be a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("Second Clear failed: %v", err)
	}
}
