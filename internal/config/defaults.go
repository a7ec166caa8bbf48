package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultTicTacToeConfig returns the built-in tuning. It matches
// defaults/tictactoe.yaml and is used when the embedded file cannot be parsed.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Mode:       "cpu",
		Difficulty: "easy",
		CPUDelayMS: 500,
		Engine: EngineConfig{
			MediumDepth:      1,
			HardDepth:        2,
			SmartProbability: 0.7,
			Jitter:           0.1,
		},
	}
}
