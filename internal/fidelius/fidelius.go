package fidelius

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

// lockRetryDelay is how often a blocked process re-attempts the file lock.
const lockRetryDelay = 50 * time.Millisecond

// Fidelius is the keeper of secrets: the only entry point application code
// uses to read or change stored credentials. Every mutating operation
// reloads the on-disk state, takes the advisory file lock, re-checks the
// overwrite policy against the reloaded state, mutates, and persists.
type Fidelius struct {
	store *Store
	creds Credentials
}

// New builds a keeper over the given store and loads the current secrets.
func New(store *Store) (*Fidelius, error) {
	f := &Fidelius{store: store}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Reload replaces the in-memory credential set with a fresh decrypted read
// from disk. The in-memory copy is never trusted across calls.
func (f *Fidelius) Reload() error {
	creds, err := f.store.ReadAll()
	if err != nil {
		return err
	}
	f.creds = creds
	return nil
}

// withLock runs fn while holding the advisory lock next to the secrets file.
// The lock only excludes other cooperating processes; it is advisory, not
// OS-enforced exclusion against arbitrary writers.
func (f *Fidelius) withLock(fn func() error) error {
	fileLock := flock.New(f.store.LockPath)

	ctx, cancel := context.WithTimeout(context.Background(), f.store.LockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return fmt.Errorf("lock %s not acquired within %s: %w",
			f.store.LockPath, f.store.LockTimeout, werrors.ErrLockTimeout)
	}
	defer func() {
		_ = fileLock.Unlock()
	}()

	return fn()
}

// SetUser stores the user and password together. Replacing an existing user
// requires overwrite; there is no way to change one field without the other.
func (f *Fidelius) SetUser(user, password string, overwrite bool) error {
	if err := f.Reload(); err != nil {
		return err
	}

	return f.withLock(func() error {
		if f.creds.User != nil && !overwrite {
			return fmt.Errorf("user/password already set, and overwrite is set to %t: %w",
				overwrite, werrors.ErrAlreadySet)
		}

		f.creds.User = &user
		f.creds.Password = &password
		return f.store.WriteAll(f.creds)
	})
}

// GetUser returns the user from the last-loaded snapshot.
func (f *Fidelius) GetUser() (string, error) {
	if f.creds.User == nil {
		return "", fmt.Errorf("no user has been set: %w", werrors.ErrNotSet)
	}
	return *f.creds.User, nil
}

// GetPassword returns the password from the last-loaded snapshot.
func (f *Fidelius) GetPassword() (string, error) {
	if f.creds.Password == nil {
		return "", fmt.Errorf("no password has been set: %w", werrors.ErrNotSet)
	}
	return *f.creds.Password, nil
}

// AddProgram validates and stores a program record keyed by its progname.
// The server-internal puid is stripped before the record is persisted.
// Replacing an existing program requires overwrite.
func (f *Fidelius) AddProgram(program Program, overwrite bool) error {
	if err := f.Reload(); err != nil {
		return err
	}

	program.Puid = nil

	if err := program.Validate(); err != nil {
		return err
	}

	return f.withLock(func() error {
		if _, exists := f.creds.Programs[program.Progname]; exists && !overwrite {
			return fmt.Errorf("program %s already set, and overwrite is set to %t: %w",
				program.Progname, overwrite, werrors.ErrAlreadySet)
		}

		f.creds.Programs[program.Progname] = program
		return f.store.WriteAll(f.creds)
	})
}

// GetPrograms returns the known program names in lexicographic order.
func (f *Fidelius) GetPrograms() []string {
	return f.creds.ProgramNames()
}

// GetAllProgramDetails returns a copy of all stored program records.
func (f *Fidelius) GetAllProgramDetails() map[string]Program {
	programs := make(map[string]Program, len(f.creds.Programs))
	for name, program := range f.creds.Programs {
		programs[name] = program
	}
	return programs
}

// GetProgramDetails returns the record for one program.
func (f *Fidelius) GetProgramDetails(name string) (Program, error) {
	program, ok := f.creds.Programs[name]
	if !ok {
		return Program{}, fmt.Errorf("program %s not found in %v: %w",
			name, f.creds.ProgramNames(), werrors.ErrNotFound)
	}
	return program, nil
}

// DeleteProgram removes a stored program.
func (f *Fidelius) DeleteProgram(name string) error {
	if err := f.Reload(); err != nil {
		return err
	}

	return f.withLock(func() error {
		if _, err := f.GetProgramDetails(name); err != nil {
			return err
		}
		delete(f.creds.Programs, name)
		return f.store.WriteAll(f.creds)
	})
}

// ClearCache wipes the secrets file and the keyring entry. Destructive
// operations bypass the lock since there is nothing to merge with.
func (f *Fidelius) ClearCache() error {
	if err := f.store.Clear(); err != nil {
		return err
	}
	f.creds = Credentials{Programs: map[string]Program{}}
	return nil
}
