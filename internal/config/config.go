package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	AppName = "sysfetch"

	// System-wide environment file
	SystemEnvFile = "/etc/sysfetch/env"

	// Environment variables
	EnvDebug   = "SYSFETCH_DEBUG"
	EnvConfig  = "SYSFETCH_CONFIG"
	EnvOffline = "SYSFETCH_OFFLINE"
)

// Build info (injected at build time via ldflags)
var (
	Version   = "0.4.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Dir returns the per-user configuration directory
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(".", "."+AppName)
}

// DefaultPath returns the config file path from the environment or the user config dir
func DefaultPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	return filepath.Join(Dir(), "config.yaml")
}

// EnvFilePaths lists the environment files in load order
func EnvFilePaths() []string {
	return []string{filepath.Join(Dir(), "env"), SystemEnvFile}
}

// LoadEnvFile loads the environment files that exist. Variables already set
// in the process environment are never overridden, so the user file wins
// over the system one.
func LoadEnvFile() error {
	var errs []error
	for _, path := range EnvFilePaths() {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue // Missing file is not an error
			}
			errs = append(errs, err)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsDebugMode checks if debug mode is enabled
func IsDebugMode() bool {
	return envBool(EnvDebug)
}

// IsOffline checks if network providers are disabled from the environment
func IsOffline() bool {
	return envBool(EnvOffline)
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "true" || v == "1" || v == "yes"
}
