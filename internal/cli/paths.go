package cli

import (
	"os"
	"path/filepath"
)

// appName is the application name used for directories and display.
const appName = "medialens"

// cacheDir returns the render cache directory using XDG standard
// (~/.cache/medialens/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
