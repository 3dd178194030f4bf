package fidelius

import (
	"errors"
	"sync"

	"github.com/zalando/go-keyring"
)

// ErrKeyringEntryMissing is returned by Keyring.Get when no entry exists for
// the (service, account) pair.
var ErrKeyringEntryMissing = errors.New("keyring entry not found")

// Keyring is the minimal capability the keeper needs from the platform
// credential manager.
type Keyring interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	// Delete removes an entry. Deleting an absent entry is a no-op.
	Delete(service, account string) error
}

// SystemKeyring stores entries in the operating system credential manager.
type SystemKeyring struct{}

func (SystemKeyring) Get(service, account string) (string, error) {
	value, err := keyring.Get(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrKeyringEntryMissing
	}
	return value, err
}

func (SystemKeyring) Set(service, account, value string) error {
	return keyring.Set(service, account, value)
}

func (SystemKeyring) Delete(service, account string) error {
	err := keyring.Delete(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// MemoryKeyring is an in-process Keyring used by tests so they never touch
// the real platform keystore.
type MemoryKeyring struct {
	mu      sync.Mutex
	entries map[string]string
}

func (m *MemoryKeyring) Get(service, account string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[service+"\x00"+account]
	if !ok {
		return "", ErrKeyringEntryMissing
	}
	return value, nil
}

func (m *MemoryKeyring) Set(service, account, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[service+"\x00"+account] = value
	return nil
}

func (m *MemoryKeyring) Delete(service, account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, service+"\x00"+account)
	return nil
}
