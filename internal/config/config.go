// Package config loads runtime settings from the environment. Values are
// read once at startup; a missing or malformed variable falls back to its
// default.
package config

import (
	"os"
	"strconv"
)

// Defaults.
const (
	DefaultMaxFileSize = int64(5 * 1024 * 1024)
	DefaultLogLevel    = "info"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	// MaxFileSize is the per-file byte ceiling applied during discovery and
	// parsing. CODESCOPE_MAX_FILE_SIZE.
	MaxFileSize int64

	// FollowSymlinks enables symlink traversal during discovery.
	// CODESCOPE_FOLLOW_SYMLINKS.
	FollowSymlinks bool

	// IncludeHidden includes dotfiles and dot-directories during discovery.
	// CODESCOPE_INCLUDE_HIDDEN.
	IncludeHidden bool

	// LogLevel is one of debug, info, warn, error. CODESCOPE_LOG_LEVEL.
	LogLevel string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		MaxFileSize:    getInt64("CODESCOPE_MAX_FILE_SIZE", DefaultMaxFileSize),
		FollowSymlinks: getBool("CODESCOPE_FOLLOW_SYMLINKS", false),
		IncludeHidden:  getBool("CODESCOPE_INCLUDE_HIDDEN", false),
		LogLevel:       getString("CODESCOPE_LOG_LEVEL", DefaultLogLevel),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
