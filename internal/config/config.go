// Package config loads tic-tac-toe tuning from YAML, applies environment
// overrides and validates the result. It also persists the user's settings.
package config

// TicTacToeConfig is the game tuning read from tictactoe.yaml.
type TicTacToeConfig struct {
	Mode       string       `yaml:"mode" env:"MODE" validate:"oneof=cpu pvp"`
	Difficulty string       `yaml:"difficulty" env:"DIFFICULTY" validate:"oneof=easy medium hard"`
	CPUDelayMS int          `yaml:"cpu_delay_ms" env:"CPU_DELAY_MS" validate:"gte=0,lte=10000"`
	Engine     EngineConfig `yaml:"engine"`
}

// EngineConfig tunes the computer player.
type EngineConfig struct {
	MediumDepth      int     `yaml:"medium_depth" env:"MEDIUM_DEPTH" validate:"gte=0,lte=9"`
	HardDepth        int     `yaml:"hard_depth" env:"HARD_DEPTH" validate:"gte=0,lte=9"`
	SmartProbability float64 `yaml:"smart_probability" env:"SMART_PROBABILITY" validate:"gte=0,lte=1"`
	Jitter           float64 `yaml:"jitter" env:"JITTER" validate:"gte=0,lte=1"`
}
