package core

import "time"

// RuntimeConfig contains configuration passed to the terminal front end.
// The front end uses this to size the screen and pace the world timer.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Period of the world timer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 10 * time.Millisecond,
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has stopped and waits for a restart
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	// Scored is the number of obstacles passed this tick.
	Scored int
	// Recycled reports whether an obstacle was moved back to the right edge.
	Recycled bool
}
