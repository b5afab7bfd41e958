// Package paths resolves filesystem locations used by beats.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir         = "beats"
	configFileName = "config.yaml"
)

// ConfigDir returns the beats directory under the user's config directory.
// Falls back to ~/.config/beats when the platform has no config directory.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appDir)
	}
	return filepath.Join(home, ".config", appDir)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// ResolveConfigPath normalizes a user-supplied config path.
// Empty input resolves to the default config file and a leading "~/" expands
// to home.
func ResolveConfigPath(path string) string {
	if path == "" {
		return ConfigFile()
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return filepath.Clean(path)
}
