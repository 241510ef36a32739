// Package config handles configuration loading and defaults.
package config

import "path/filepath"

// Default values.
const (
	DefaultDataDir      = "~/.taskpad"
	DefaultLogLevel     = "info"
	DefaultTheme        = "light"
	DefaultSplashGrowMS = 800
	DefaultSplashHoldMS = 1500
)

// Config holds the full configuration for taskpad.
type Config struct {
	// DataDir holds the preference store and the log file.
	DataDir string `toml:"data_dir"`

	// Logging
	LogLevel string `toml:"log_level"`

	// DefaultTheme is applied on first launch, before a theme
	// preference has been stored. One of "light" or "dark".
	DefaultTheme string `toml:"default_theme"`

	// Splash timings in milliseconds. Both zero skips the splash.
	SplashGrowMS int `toml:"splash_grow_ms"`
	SplashHoldMS int `toml:"splash_hold_ms"`
}

// PrefsPath returns the location of the preference store.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.DataDir, "prefs.json")
}

// LogPath returns the location of the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "taskpad.log")
}
