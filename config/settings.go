// Package config provides application settings loaded from environment
// variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Config directory resolution under the user's home
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Settings holds all application configuration.
type Settings struct {
	// ConfigDir is where history.json and favorites.json live.
	ConfigDir string
	// HistoryDisplay is the default number of history entries shown.
	HistoryDisplay int
}

// New creates settings from environment variables with defaults.
// REGEXLAB_CONFIG_DIR overrides the default ~/.regexlab directory,
// which also gives tests an isolated store.
func New() (Settings, error) {
	dir := os.Getenv("REGEXLAB_CONFIG_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Settings{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".regexlab")
	}

	historyDisplay, err := getEnvInt("REGEXLAB_HISTORY_DISPLAY", 10)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		ConfigDir:      dir,
		HistoryDisplay: historyDisplay,
	}, nil
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}
