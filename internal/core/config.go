package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a host hands a game on Reset: the playfield size in
// terminal cells, the tick rate and the seed. Equal configs and equal input
// replay the same game.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; hosts replace 0 with a time-based seed
}

// Normalized returns c with a default tick rate and a screen of at least one cell.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	c.ScreenW = max(c.ScreenW, 1)
	c.ScreenH = max(c.ScreenH, 1)
	return c
}

// DeltaT returns the fixed timestep in seconds for the configured tick rate.
func (c RuntimeConfig) DeltaT() float64 {
	return 1.0 / float64(c.Normalized().TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
