package config

import "fmt"

// Difficulty presets accepted by --difficulty and the settings file.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Modes accepted by --mode and the settings file.
const (
	ModeCPU = "cpu"
	ModePvP = "pvp"
)

// ApplyDifficultyPreset sets the difficulty on cfg. An empty preset is a no-op.
func ApplyDifficultyPreset(cfg *TicTacToeConfig, preset string) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		cfg.Difficulty = preset
		return nil
	default:
		return fmt.Errorf("config: %w: unknown difficulty %q", ErrInvalid, preset)
	}
}

// ApplyModePreset sets the mode on cfg. An empty mode is a no-op.
func ApplyModePreset(cfg *TicTacToeConfig, mode string) error {
	switch mode {
	case "":
		return nil
	case ModeCPU, ModePvP:
		cfg.Mode = mode
		return nil
	default:
		return fmt.Errorf("config: %w: unknown mode %q", ErrInvalid, mode)
	}
}
