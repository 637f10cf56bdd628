package core

import "time"

// RuntimeConfig contains configuration passed to a game at creation.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Driver ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one driver tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the coarse game status the platform needs to drive the loop.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Total lines cleared
	Level    int  // Current level
	GameOver bool // Whether the game has been lost
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the player asked to stop
}

// Finished reports whether the driver should stop stepping the game.
func (s GameState) Finished() bool {
	return s.GameOver || s.Quit
}

// StepResult is returned by a game after each driver step.
// Contains the updated game state and the events that occurred during the step.
type StepResult struct {
	State GameState

	LinesCleared int  // Lines removed by locks during this step
	LevelChanged bool // Level went up during this step
	Locked       int  // Pieces locked during this step
}
