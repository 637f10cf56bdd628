package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game of tetris.

Controls:
  Left/H, Right/L  - Move piece
  Up/K/X           - Rotate clockwise
  Down/J           - Soft drop (1 point per row)
  Space            - Hard drop (2 points per row)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1.5s fall interval at level 1
  normal - 1s fall interval at level 1
  hard   - 0.6s fall interval at level 1

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"difficulty", cfg.Difficulty.Preset,
		"base_interval", cfg.Gravity.BaseInterval(),
		"fps", rc.TickRate,
	)

	final, err := tui.Run(gameFactory(cfg), rc, logger)
	if err != nil {
		logger.Error("run failed", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), farewell(final))
	return nil
}

// farewell is printed once the alternate screen has been restored.
func farewell(st core.GameState) string {
	return fmt.Sprintf("Thanks for playing! Final Score: %d", st.Score)
}

// loadConfig resolves the configuration and applies a difficulty override.
func loadConfig(path, difficulty string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return cfg, err
	}
	if difficulty == "" {
		return cfg, nil
	}

	preset := config.DifficultyPreset(difficulty)
	if !preset.Known() {
		return cfg, fmt.Errorf("unknown difficulty %q (want one of %v)", difficulty, config.Presets)
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// gameOptions converts the configuration into engine options.
func gameOptions(cfg config.TetrisConfig, seed int64) tetris.Options {
	return tetris.Options{
		Width:            cfg.Board.Width,
		Height:           cfg.Board.Height,
		BaseFallInterval: cfg.Gravity.BaseInterval(),
		MinFallInterval:  cfg.Gravity.MinInterval(),
		Random:           tetris.NewRandomSource(seed),
	}
}

// gameFactory returns a constructor for fresh games with the given configuration.
func gameFactory(cfg config.TetrisConfig) tui.GameFactory {
	return func(seed int64) tui.Game {
		return tetris.New(gameOptions(cfg, seed))
	}
}
