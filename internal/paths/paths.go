package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "spindle"

// ConfigDir returns the directory holding the configuration file.
// Uses os.UserConfigDir() which returns:
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - macOS: ~/Library/Application Support
//   - Windows: %AppData% (roaming)
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the configuration file. The file
// does not have to exist; a missing file reads as an empty config.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "spindle.conf")
}

// CacheDir returns the directory for application-managed data such as
// the rip-result database.
//   - Linux: $XDG_CACHE_HOME/spindle or ~/.cache/spindle
//   - macOS: ~/Library/Caches/spindle
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ResultsDBPath returns the path of the rip-result database.
func ResultsDBPath() string {
	return filepath.Join(CacheDir(), "results.db")
}
