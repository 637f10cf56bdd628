package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Known reports whether p is one of the named presets.
func (p DifficultyPreset) Known() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// BaseIntervalForPreset returns the level-1 fall interval in milliseconds.
func BaseIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1500
	case DifficultyHard:
		return 600
	default:
		return 1000
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
	cfg.Gravity.BaseIntervalMs = BaseIntervalForPreset(preset)
	if cfg.Gravity.MinIntervalMs > cfg.Gravity.BaseIntervalMs {
		cfg.Gravity.MinIntervalMs = cfg.Gravity.BaseIntervalMs
	}
}
