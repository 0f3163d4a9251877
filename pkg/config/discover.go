package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// userConfigRel is the config file path relative to the XDG config home.
var userConfigRel = filepath.Join(appName, "config.toml")

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// UserPath returns the per-user config file path. The file may not exist.
func UserPath() string {
	return filepath.Join(xdg.ConfigHome, userConfigRel)
}

// Discover resolves and loads the configuration. An explicit path must
// exist; otherwise the project file, then the user file, then defaults are
// used.
func Discover(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if ok {
		return Load(path)
	}

	if path, err := xdg.SearchConfigFile(userConfigRel); err == nil {
		return Load(path)
	}

	return Default(), nil
}

func defaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, appName)
}
