package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/taskpad/taskpad.toml)
// 3. Environment variables (TASKPAD_*)
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	configFlag := fs.String("config", "", "Path to config file")
	dataDir := fs.String("data-dir", "", "Data directory (preference store and logs)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	theme := fs.String("theme", "", "Default theme for first launch (light, dark)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	configFile := *configFlag
	if configFile == "" {
		configFile = findUserConfigFile()
	}
	if configFile != "" {
		if err := loadConfigFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	loadFromEnv(cfg)

	// Flags override everything.
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *theme != "" {
		cfg.DefaultTheme = *theme
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.LogLevel = DefaultLogLevel
	cfg.DefaultTheme = DefaultTheme
	cfg.SplashGrowMS = DefaultSplashGrowMS
	cfg.SplashHoldMS = DefaultSplashHoldMS
}

// findUserConfigFile returns the user config path if one exists.
func findUserConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, "taskpad", "taskpad.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKPAD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKPAD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKPAD_THEME"); v != "" {
		cfg.DefaultTheme = v
	}
	if v := os.Getenv("TASKPAD_SPLASH_GROW_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SplashGrowMS = n
		}
	}
	if v := os.Getenv("TASKPAD_SPLASH_HOLD_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SplashHoldMS = n
		}
	}
}

// finalize computes derived values and validates the result.
func finalize(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)

	switch cfg.DefaultTheme {
	case "light", "dark":
	default:
		return fmt.Errorf("invalid default_theme %q, must be light or dark", cfg.DefaultTheme)
	}
	if cfg.SplashGrowMS < 0 || cfg.SplashHoldMS < 0 {
		return fmt.Errorf("splash timings must not be negative")
	}
	return nil
}
