package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvBoardWidth     = "TETRIS_BOARD_WIDTH"
	EnvBoardHeight    = "TETRIS_BOARD_HEIGHT"
	EnvBaseIntervalMs = "TETRIS_BASE_INTERVAL_MS"
	EnvMinIntervalMs  = "TETRIS_MIN_INTERVAL_MS"
	EnvDifficulty     = "TETRIS_DIFFICULTY"
)

// LoadTetris loads the tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Variables from a .env file in the working directory and the process
// environment are applied on top, then the result is validated.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := LoadEnvFile(".env"); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// loadFile resolves and parses the first available config file.
func loadFile(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults. When base_interval_ms is
// omitted it is derived from the difficulty preset.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.BaseIntervalMs = 0

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTetrisConfig(), err
	}
	if cfg.Gravity.BaseIntervalMs == 0 {
		cfg.Gravity.BaseIntervalMs = BaseIntervalForPreset(cfg.Difficulty.Preset)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding variables
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// ApplyEnv overrides config fields from environment variables.
// The difficulty preset is applied before the explicit interval overrides.
func ApplyEnv(cfg *TetrisConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDifficulty); ok && v != "" {
		ApplyPreset(cfg, DifficultyPreset(v))
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvBoardWidth, &cfg.Board.Width},
		{EnvBoardHeight, &cfg.Board.Height},
		{EnvBaseIntervalMs, &cfg.Gravity.BaseIntervalMs},
		{EnvMinIntervalMs, &cfg.Gravity.MinIntervalMs},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q: %w", e.key, v, err)
		}
		*e.dst = n
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
