package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
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
	Score    int  // Current score
	GameOver bool // Whether the current round has ended
	Paused   bool // Whether the game is paused
	InMenu   bool // Whether the in-game menu is showing
}

// RoundSummary describes a finished multi-player round.
// Winner is NoPlayer for a draw.
type RoundSummary struct {
	Winner     PlayerID
	Claimed    map[PlayerID]int // Cells claimed per player
	CollisionX int
	CollisionY int
	Duration   float64 // Simulated seconds
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Round is set only on the tick a multi-player round ends.
	Round *RoundSummary

	// Quit is set when the player picked Quit from the in-game menu.
	Quit bool
}
