// Package paths resolves the platform default directories the engine
// expects: the preference directory holding the root openmw.cfg, and the
// user-data directory for saves, screenshots and data-local.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDir = "openmw"

// DefaultConfigDir returns the directory expected to hold the user's root
// openmw.cfg. OPENMW_CONFIG_DIR overrides the platform lookup.
func DefaultConfigDir() string {
	if dir := os.Getenv("OPENMW_CONFIG_DIR"); dir != "" {
		return dir
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir(), "Documents", "My Games", appDir)
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Preferences", appDir)
	default:
		return filepath.Join(getEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(homeDir(), ".config")), appDir)
	}
}

// DefaultUserDataDir returns the directory for user data: save storage,
// screenshots, navmeshdb and the default data-local. OPENMW_USERDATA_DIR
// overrides the platform lookup. On Windows it coincides with the config
// directory.
func DefaultUserDataDir() string {
	if dir := os.Getenv("OPENMW_USERDATA_DIR"); dir != "" {
		return dir
	}
	switch runtime.GOOS {
	case "windows":
		return DefaultConfigDir()
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Application Support", appDir)
	default:
		return filepath.Join(getEnvOrDefault("XDG_DATA_HOME", filepath.Join(homeDir(), ".local", "share")), appDir)
	}
}

// DefaultDataLocalDir is the engine's default last-loading data directory,
// which overrides all others in the load order.
func DefaultDataLocalDir() string {
	return filepath.Join(DefaultUserDataDir(), "data")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
