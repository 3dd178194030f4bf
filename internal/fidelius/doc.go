// Package fidelius is the keeper of secrets for the winterapi client.
//
// It persists the API user, password, and per-program credentials in a single
// encrypted file, with the symmetric key held by the platform keyring.
//
// # Storage Architecture
//
// Three layers sit on top of each other:
//
//  1. Keyring: a minimal {Get, Set, Delete} capability over the operating
//     system credential manager. A 256-bit key is generated on first use,
//     base64url-encoded, and stored under a fixed (service, account) pair.
//  2. Store: reads and writes one encrypted blob (~/.winterapi.txt). The
//     blob is NaCl secretbox ciphertext with a random 24-byte nonce
//     prepended, wrapping a JSON credential set. Every write replaces the
//     whole file.
//  3. Fidelius: the facade application code talks to. It enforces the
//     overwrite policy and the reload-before-mutate discipline.
//
// # Overwrite Policy
//
// Each logical field (the user, each program) moves UNSET -> SET freely, but
// replacing an already-set value requires an explicit overwrite flag;
// otherwise ErrAlreadySet is returned. The only way back to UNSET is
// DeleteProgram or a full ClearCache.
//
// # Concurrency
//
// The secrets file is shared between processes. Mutating operations reload
// the on-disk state, then hold an advisory file lock (a .lock sibling of the
// secrets file) for the check-mutate-persist cycle, with a bounded wait that
// surfaces ErrLockTimeout. Read operations use the last-loaded snapshot and
// take no lock; credentials change rarely relative to reads.
//
// Decryption failures are always surfaced. A credential store that silently
// comes back empty would lose data, so a wrong key or mangled file returns
// ErrDecryptFailed rather than an empty credential set.
package fidelius
