// Package errors provides typed error values for the winterapi client.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Keystore errors: the platform keyring is unreachable (ErrKeystoreUnavailable)
//   - Store errors: the encrypted secrets file cannot be read back
//     (ErrDecryptFailed, ErrCorruptStore)
//   - Credential errors: policy violations and missing values
//     (ErrAlreadySet, ErrNotSet, ErrNotFound, ErrInvalidProgram)
//   - Locking errors: the secrets file lock could not be taken (ErrLockTimeout)
//   - API errors: the remote server rejected a call (ErrRequestFailed)
//
// # Usage
//
// Return errors from internal packages, wrapped with context:
//
//	if _, ok := c.Programs[name]; !ok {
//	    return fmt.Errorf("program %q not in %v: %w", name, known, errors.ErrNotFound)
//	}
//
// Handle errors in the CLI layer:
//
//	err := client.AddUserDetails(user, password, false)
//	if errors.Is(err, werrors.ErrAlreadySet) {
//	    // Tell the user to pass --overwrite
//	}
//
// ErrNotSet and ErrNotFound are the recoverable pair: the CLI catches them to
// drive interactive provisioning. Everything else terminates the operation.
package errors
