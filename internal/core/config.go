package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to its frontend.
type GameState struct {
	Score     int    // Notes collected so far
	Keys      int    // Keys found so far
	Lives     int    // Remaining lives
	Level     int    // Zero-based level index
	LevelName string // Display name of the current level
	Running   bool   // A run is in progress
	GameOver  bool   // The run ended with zero lives
	Won       bool   // Every level was cleared
	Ticks     int    // Ticks simulated in the current run
}

// Finished reports whether the run reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
