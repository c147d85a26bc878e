package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultTickRate gives a tick roughly every 34ms.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Current score, never negative
	Wave     int  // Current wave, starting at 1
	Lives    int  // Remaining lives
	GameOver bool // The game has ended, won or lost
	Won      bool // The game ended because the player cleared it
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// LifeLost is set when the player was hit during this tick.
	LifeLost bool
}

// RunStats summarizes a finished run for score storage.
type RunStats struct {
	Shots int // Player shots fired
	Hits  int // Shots that destroyed an alien
}
