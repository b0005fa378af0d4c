package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size the camera viewport and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in terminal cells
	ScreenH  int   // Viewport height in terminal cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic food placement
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

// GameState communicates the simulation status to the platform.
type GameState struct {
	Mass  float64 // Current cell mass
	Score int     // Mass truncated to an int, used for score storage
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State    GameState
	Consumed int // Food items consumed during this tick
}
