package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves   int           // Counted moves in the current attempt
	Elapsed time.Duration // Time since the attempt started
	Solved  bool          // Whether the puzzle is solved
	Paused  bool          // Whether the game is paused

	ShuffleMoves int    // Scramble depth of the current attempt
	Scramble     string // Scramble in cube notation
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// JustSolved is set on the tick the puzzle became solved.
	JustSolved bool
}
