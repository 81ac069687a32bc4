package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// LocalConfigFile is looked up in the working directory first.
	LocalConfigFile = "lal.yml"
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "lal"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// Environment variables that override file settings.
const (
	EnvInput     = "LAL_INPUT"
	EnvOutputDir = "LAL_OUTPUT_DIR"
)

// GlobalConfigPath returns the path to the user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/lal/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	candidates := []string{LocalConfigFile, GlobalConfigPath()}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides file settings with LAL_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
}
