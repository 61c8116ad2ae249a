package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the default config file location when set.
const EnvConfigPath = "DEPTHLS_CONFIG"

// DefaultPath returns the default config file location.
//
// Locations:
//   - $DEPTHLS_CONFIG when set
//   - otherwise <user config dir>/depthls/config.yaml
//     (~/.config/depthls/config.yaml on Unix, %AppData%\depthls on Windows)
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "depthls", "config.yaml")
		}
		return filepath.Join(homeDir, ".config", "depthls", "config.yaml")
	}
	return filepath.Join(configDir, "depthls", "config.yaml")
}
