package animator

// Snapshot captures the complete animator state for tests and debug logging.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	X       int
	Y       int
	DX      int
	DY      int
	Phase   uint64
	Mode    VelocityMode
	Palette string
}

// Snapshot returns the current animator snapshot.
func (a *Animator) Snapshot() Snapshot {
	return Snapshot{
		Tick:    a.ticks,
		Width:   a.width,
		Height:  a.height,
		X:       a.pos.X,
		Y:       a.pos.Y,
		DX:      a.vel.DX,
		DY:      a.vel.DY,
		Phase:   a.phase,
		Mode:    a.mode,
		Palette: a.palette.ID(),
	}
}
