package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvWordsURL          = "SCRIBBLE_WORDS_URL"
	EnvWordsKey          = "SCRIBBLE_WORDS_KEY"
	EnvWordsFile         = "SCRIBBLE_WORDS_FILE"
	EnvReferenceProvider = "SCRIBBLE_REFERENCE_PROVIDER"
)

// Load loads the scribble configuration.
// Search order: customPath -> ~/.scribble/config.yaml -> ./configs/scribble.yaml -> embedded default.
// Values missing from a file keep their built-in defaults.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/scribble.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultScribbleYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays environment variables onto cfg.
// A .env file in the working directory is loaded first when present;
// variables already set in the process environment win over the file.
func ApplyEnv(cfg *Config) {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	if v := os.Getenv(EnvWordsURL); v != "" {
		cfg.Words.RemoteURL = v
	}
	if v := os.Getenv(EnvWordsKey); v != "" {
		cfg.Words.APIKey = v
	}
	if v := os.Getenv(EnvWordsFile); v != "" {
		cfg.Words.File = v
	}
	if v := os.Getenv(EnvReferenceProvider); v != "" {
		cfg.Reference.Provider = v
	}
}

// DataDir returns ~/.scribble, or an empty string if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scribble")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
