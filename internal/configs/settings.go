package configs

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// KeeperSettings holds the locations the credential keeper works with.
// Tests override WinterSettings to point at temporary paths.
type KeeperSettings struct {
	KeyringService string
	KeyringAccount string
	SecretsPath    string
	LockTimeout    time.Duration
}

// LockPath returns the advisory lock path paired with the secrets file.
func (s *KeeperSettings) LockPath() string {
	return s.SecretsPath + ".lock"
}

var WinterSettings *KeeperSettings

const (
	defaultKeyringService = "winterapi"
	defaultKeyringAccount = "apisaltkey"

	// DefaultLockTimeout bounds how long a mutating operation waits for the
	// secrets file lock before giving up.
	DefaultLockTimeout = 300 * time.Second
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	// This is independent of any project, so it is ok to init here.
	WinterSettings = &KeeperSettings{
		KeyringService: defaultKeyringService,
		KeyringAccount: defaultKeyringAccount,
		SecretsPath:    filepath.Join(homeDir, ".winterapi.txt"),
		LockTimeout:    DefaultLockTimeout,
	}
}
