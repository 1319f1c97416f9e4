package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvConfigFile overrides the configuration file location.
const EnvConfigFile = "PWDLINE_CONFIG"

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "pwdline")
}

// GetConfigFile returns the configuration file path, honouring
// PWDLINE_CONFIG when it is set.
func GetConfigFile() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetLogsDir returns the logs directory path
func GetLogsDir() string {
	return filepath.Join(xdg.StateHome, "pwdline", "logs")
}

// GetHomeDir returns the user's home directory as resolved by xdg.
func GetHomeDir() string {
	return xdg.Home
}

// EnsureDir creates the parent directory of file if it doesn't exist
func EnsureDir(file string) error {
	return os.MkdirAll(filepath.Dir(file), 0700)
}

// EnsureLogsDir creates the logs directory if it doesn't exist
func EnsureLogsDir() error {
	logsDir := GetLogsDir()
	return os.MkdirAll(logsDir, 0700)
}
