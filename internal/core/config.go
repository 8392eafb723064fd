package core

// RuntimeConfig contains the process-level settings the engine starts with.
type RuntimeConfig struct {
	Window   Size   // Logical resolution, independent of the physical window
	Title    string // Window title
	TickRate int    // Target frames per second (default 64)
	Seed     int64  // RNG seed for gameplay; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Window:   Size{W: 1024, H: 768},
		Title:    "Hungry Pixel",
		TickRate: 64,
		Seed:     0,
	}
}

// FrameBudgetMS returns the whole-millisecond frame budget for the tick rate.
func (c RuntimeConfig) FrameBudgetMS() uint32 {
	if c.TickRate <= 0 {
		return 1000 / 64
	}
	return uint32(1000 / c.TickRate)
}
