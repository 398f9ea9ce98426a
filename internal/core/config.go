package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 50)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional explicit config file
	Difficulty string // Optional difficulty preset override
	LevelsDir  string // Optional directory of stage files
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  28,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMs returns the simulation step length in milliseconds.
func (c RuntimeConfig) TickMs() int {
	if c.TickRate <= 0 {
		return 20
	}
	return 1000 / c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Stage    int  // Current stage number, 0 when not applicable
	Kills    int  // Enemies destroyed, for score history
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Sounds lists sound identifiers requested during the tick.
	Sounds []string
}
