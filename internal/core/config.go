package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; the logical resolution comes
// from the game's own config.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal cells or window pixels)
	ScreenH  int   // Output height (terminal cells or window pixels)
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
	Tick      int    // Ticks simulated since the last reset
	Paused    bool   // Whether the game is paused
	Action    string // Current player action label
	Particles int    // Live particle count
	Respawns  int    // Times the player fell out of the map
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
