package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig is the optional per-user config file (~/.winterapi/config.toml).
type UserConfig struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults are fallbacks the CLI applies when a flag is omitted.
type Defaults struct {
	Program     string `toml:"program"`
	DownloadDir string `toml:"download_dir"`
}

// UserConfigPath returns the path of the per-user config file.
func UserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".winterapi", "config.toml"), nil
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file is not an error; defaults come back empty.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := UserConfigPath()
	if err != nil {
		return nil, err
	}

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath, err := UserConfigPath()
	if err != nil {
		return err
	}

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}
