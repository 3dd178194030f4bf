package errors

import "errors"

// Keystore errors indicate problems reaching or using the platform keyring.
var (
	// ErrKeystoreUnavailable indicates the platform keyring could not be reached.
	ErrKeystoreUnavailable = errors.New("platform keystore unavailable")
)

// Store errors indicate the on-disk secrets blob could not be read back.
var (
	// ErrDecryptFailed indicates the secrets file could not be decrypted with the current key.
	ErrDecryptFailed = errors.New("failed to decrypt secrets file")

	// ErrCorruptStore indicates the decrypted secrets file is not valid JSON.
	ErrCorruptStore = errors.New("secrets file content is corrupt")
)

// Credential errors indicate policy violations or missing values.
var (
	// ErrAlreadySet indicates a credential field is already set and overwrite was not requested.
	ErrAlreadySet = errors.New("value already set")

	// ErrNotSet indicates a credential field has not been provisioned yet.
	ErrNotSet = errors.New("value has not been set")

	// ErrNotFound indicates the named program is not in the credential store.
	ErrNotFound = errors.New("program not found")

	// ErrInvalidProgram indicates a program record is missing required fields.
	ErrInvalidProgram = errors.New("invalid program record")
)

// Locking errors indicate the secrets file lock could not be taken.
var (
	// ErrLockTimeout indicates the secrets file lock was not acquired within the timeout.
	ErrLockTimeout = errors.New("timed out waiting for secrets file lock")
)

// API errors indicate failures talking to the remote server.
var (
	// ErrRequestFailed indicates the server answered with a non-200 status.
	ErrRequestFailed = errors.New("API request failed")

	// ErrInvalidToO indicates a ToO request failed local validation.
	ErrInvalidToO = errors.New("invalid ToO request")
)
