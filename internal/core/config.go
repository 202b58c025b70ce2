package core

import "time"

// RuntimeConfig contains what the platform layer tells the animator at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Animation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Interval returns the duration between ticks.
// Non-positive rates fall back to the default rate.
func (c RuntimeConfig) Interval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}
