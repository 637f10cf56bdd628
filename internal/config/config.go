// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Minimum playable board size. Every piece must fit at the spawn anchor.
const (
	MinBoardWidth  = 6
	MinBoardHeight = 4
)

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the automatic fall timing.
type GravityConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Fall interval at level 1
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Floor reached at high levels
}

// DifficultyConfig selects a named preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// BaseInterval returns the level-1 fall interval as a duration.
func (g GravityConfig) BaseInterval() time.Duration {
	return time.Duration(g.BaseIntervalMs) * time.Millisecond
}

// MinInterval returns the fall interval floor as a duration.
func (g GravityConfig) MinInterval() time.Duration {
	return time.Duration(g.MinIntervalMs) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("%w: board width %d is below %d", ErrInvalidConfig, c.Board.Width, MinBoardWidth)
	}
	if c.Board.Height < MinBoardHeight {
		return fmt.Errorf("%w: board height %d is below %d", ErrInvalidConfig, c.Board.Height, MinBoardHeight)
	}
	if c.Gravity.BaseIntervalMs <= 0 {
		return fmt.Errorf("%w: base_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Gravity.MinIntervalMs <= 0 {
		return fmt.Errorf("%w: min_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Gravity.MinIntervalMs > c.Gravity.BaseIntervalMs {
		return fmt.Errorf("%w: min_interval_ms %d exceeds base_interval_ms %d",
			ErrInvalidConfig, c.Gravity.MinIntervalMs, c.Gravity.BaseIntervalMs)
	}
	if c.Difficulty.Preset != "" && !c.Difficulty.Preset.Known() {
		return fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalidConfig, c.Difficulty.Preset)
	}
	return nil
}
