package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDifficultyOverride(t *testing.T) {
	path := writeConfig(t, "board:\n  width: 12\n")

	cfg, err := loadConfig(path, "hard")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, config.DifficultyHard, cfg.Difficulty.Preset)
	assert.Equal(t, 600*time.Millisecond, cfg.Gravity.BaseInterval())

	_, err = loadConfig(path, "nightmare")
	assert.Error(t, err)
}

func TestGameFactoryUsesConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Board.Width = 8
	cfg.Board.Height = 16
	cfg.Gravity.BaseIntervalMs = 700

	opts := gameOptions(cfg, 1)
	assert.Equal(t, 8, opts.Width)
	assert.Equal(t, 16, opts.Height)
	assert.Equal(t, 700*time.Millisecond, opts.BaseFallInterval)
	assert.Equal(t, 50*time.Millisecond, opts.MinFallInterval)

	g, ok := gameFactory(cfg)(1).(*tetris.Game)
	require.True(t, ok)
	snap := g.Snapshot()
	assert.Equal(t, 8, snap.Width)
	assert.Equal(t, 16, snap.Height)
	assert.Equal(t, 700*time.Millisecond, g.FallInterval())

	// Same seed, same piece sequence.
	a := gameFactory(cfg)(99).(*tetris.Game)
	b := gameFactory(cfg)(99).(*tetris.Game)
	assert.Equal(t, a.Current(), b.Current())
	assert.Equal(t, a.Next(), b.Next())
}

func TestFarewell(t *testing.T) {
	assert.Equal(t, "Thanks for playing! Final Score: 1250", farewell(core.GameState{Score: 1250, GameOver: true}))
	assert.Equal(t, "Thanks for playing! Final Score: 0", farewell(core.GameState{Quit: true}))
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")

	logger, closeLog, err := newLogger(path, false)
	require.NoError(t, err)
	logger.Info("hello", "k", 1)
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "tetris")
	assert.NotContains(t, string(data), "hidden")

	_, _, err = newLogger(filepath.Join(t.TempDir(), "missing", "x.log"), false)
	assert.Error(t, err)
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	path := writeConfig(t, "board:\n  height: 24\n")
	flagConfig, flagDifficulty = path, "easy"
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	var out bytes.Buffer
	configCmd.SetOut(&out)
	require.NoError(t, runConfig(configCmd, nil))

	parsed, err := config.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 24, parsed.Board.Height)
	assert.Equal(t, 1500, parsed.Gravity.BaseIntervalMs)
	assert.Equal(t, config.DifficultyEasy, parsed.Difficulty.Preset)
}
