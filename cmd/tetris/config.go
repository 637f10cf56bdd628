package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the same way 'tetris play' does and prints
it as YAML. Files are searched in order: --config, ~/.tetris/configs/tetris.yaml,
./configs/tetris.yaml, then the built-in defaults. TETRIS_* environment
variables (also read from ./.env) override file values.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
