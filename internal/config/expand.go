package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	appDir = "moni-dash"

	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.yaml"
	prefsFileName  = "prefs.yaml"
	logFileName    = "moni-dash.log"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	// Handle ~/path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	// Handle standalone ~
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// ExpandPath expands ~, ${HOME} and ${USER} in a local path.
func ExpandPath(s string) string {
	if s == "" {
		return s
	}

	result := ExpandTilde(s)

	if strings.Contains(result, "${HOME}") {
		result = strings.ReplaceAll(result, "${HOME}", getHome())
	}

	if strings.Contains(result, "${USER}") {
		result = strings.ReplaceAll(result, "${USER}", getUser())
	}

	return result
}

// getUser returns the current username for ${USER} expansion.
func getUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "user"
}

func getHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "~"
	}
	return home
}

// ConfigDir returns $XDG_CONFIG_HOME/moni-dash, or ~/.config/moni-dash.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDir)
	}
	return filepath.Join(getHome(), ".config", appDir)
}

// StateDir returns $XDG_STATE_HOME/moni-dash, or ~/.local/state/moni-dash.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appDir)
	}
	return filepath.Join(getHome(), ".local", "state", appDir)
}

// DefaultPath returns the config file location used when --config is not given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

func defaultPrefsPath() string {
	return filepath.Join(ConfigDir(), prefsFileName)
}

func defaultLogFile() string {
	return filepath.Join(StateDir(), logFileName)
}
