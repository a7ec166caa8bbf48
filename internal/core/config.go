package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	GameOver bool // current round finished
	Busy     bool // game is acting on its own (e.g. computer thinking)
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Outcome is set on the tick a round finishes.
	Outcome *Outcome
}

// Outcome describes a finished round for persistence.
type Outcome struct {
	GameID     string
	Mode       string
	Difficulty string
	Winner     string // "X", "O" or "" for a draw
	Moves      int
}
