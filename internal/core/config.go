package core

// RuntimeConfig contains the process-level settings handed to the platform
// layer at startup.
type RuntimeConfig struct {
	ArenaW   float64 // Arena width in world units
	ArenaH   float64 // Arena height in world units
	ScreenW  int     // Viewport width in characters
	ScreenH  int     // Viewport height in characters
	TickRate int     // Frames per second (default 60)
	Seed     int64   // RNG seed, 0 means derive from the clock
	Muted    bool    // Disable sound feedback
}

// Default arena dimensions in world units.
const (
	DefaultArenaW = 1024
	DefaultArenaH = 576
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ArenaW:   DefaultArenaW,
		ArenaH:   DefaultArenaH,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
