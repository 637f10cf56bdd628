package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 12
  height: 22
gravity:
  base_interval_ms: 800
  min_interval_ms: 40
`)

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 22, cfg.Board.Height)
	assert.Equal(t, 800*time.Millisecond, cfg.Gravity.BaseInterval())
	assert.Equal(t, 40*time.Millisecond, cfg.Gravity.MinInterval())
}

func TestLoadTetrisPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "board:\n  height: 24\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 24, cfg.Board.Height)
	assert.Equal(t, 1000, cfg.Gravity.BaseIntervalMs)
	assert.Equal(t, 50, cfg.Gravity.MinIntervalMs)
}

func TestLoadTetrisPresetFillsBaseInterval(t *testing.T) {
	path := writeConfig(t, "difficulty:\n  preset: hard\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Gravity.BaseIntervalMs)
}

func TestLoadTetrisErrors(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadTetris(writeConfig(t, "board: [not, a, map"))
	assert.Error(t, err)

	_, err = LoadTetris(writeConfig(t, "board:\n  width: 3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadTetrisEnvOverrides(t *testing.T) {
	t.Setenv(EnvBoardWidth, "14")
	t.Setenv(EnvMinIntervalMs, "80")

	cfg, err := LoadTetris(writeConfig(t, "board:\n  width: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Board.Width)
	assert.Equal(t, 80, cfg.Gravity.MinIntervalMs)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDifficulty:     "easy",
		EnvBoardHeight:    "30",
		EnvMinIntervalMs:  "",
		EnvBaseIntervalMs: "1200",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultTetrisConfig()
	require.NoError(t, ApplyEnv(&cfg, lookup))
	assert.Equal(t, DifficultyEasy, cfg.Difficulty.Preset)
	assert.Equal(t, 30, cfg.Board.Height)
	assert.Equal(t, 1200, cfg.Gravity.BaseIntervalMs, "explicit interval wins over preset")
	assert.Equal(t, 50, cfg.Gravity.MinIntervalMs)

	env[EnvBoardWidth] = "wide"
	assert.Error(t, ApplyEnv(&cfg, lookup))
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")), "missing file is ignored")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TETRIS_TEST_DOTENV=21\n"), 0o600))
	t.Setenv("TETRIS_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("TETRIS_TEST_DOTENV"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "21", os.Getenv("TETRIS_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TetrisConfig)
		valid  bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 5 }, false},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 3 }, false},
		{"zero base interval", func(c *TetrisConfig) { c.Gravity.BaseIntervalMs = 0 }, false},
		{"zero min interval", func(c *TetrisConfig) { c.Gravity.MinIntervalMs = 0 }, false},
		{"floor above base", func(c *TetrisConfig) { c.Gravity.MinIntervalMs = 2000 }, false},
		{"unknown preset", func(c *TetrisConfig) { c.Difficulty.Preset = "insane" }, false},
		{"empty preset", func(c *TetrisConfig) { c.Difficulty.Preset = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 600, cfg.Gravity.BaseIntervalMs)
	assert.Equal(t, DifficultyHard, cfg.Difficulty.Preset)

	cfg.Gravity.MinIntervalMs = 900
	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 600, cfg.Gravity.MinIntervalMs, "floor is capped at the base interval")

	before := cfg
	ApplyPreset(&cfg, "")
	assert.Equal(t, before, cfg)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Board.Width = 16

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "width: 16")

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
