package palette

import "github.com/vovakirdan/walker/internal/core"

// Default is the palette used when none is configured.
const Default = "spectrum"

// ramp cycles through count consecutive indexes starting at base.
type ramp struct {
	id, title string
	base      core.Color
	count     uint64
}

func (r ramp) ID() string    { return r.id }
func (r ramp) Title() string { return r.title }

func (r ramp) Color(phase uint64) core.Color {
	return r.base + core.Color(phase%r.count)
}

// pingPong walks up a ramp and back down, so the cycle has no seam.
type pingPong struct {
	id, title string
	base      core.Color
	count     uint64
}

func (p pingPong) ID() string    { return p.id }
func (p pingPong) Title() string { return p.title }

func (p pingPong) Color(phase uint64) core.Color {
	period := 2 * (p.count - 1)
	i := phase % period
	if i >= p.count {
		i = period - i
	}
	return p.base + core.Color(i)
}

func init() {
	Register(ramp{id: "spectrum", title: "Full 256-color sweep", base: 0, count: core.PaletteSpan})
	Register(ramp{id: "gradient", title: "Color cube, no system colors", base: core.ColorCubeStart, count: core.PaletteSpan - uint64(core.ColorCubeStart)})
	Register(ramp{id: "grayscale", title: "Grayscale ramp", base: core.ColorGrayStart, count: core.PaletteSpan - uint64(core.ColorGrayStart)})
	Register(pingPong{id: "fire", title: "Red to yellow and back", base: 196, count: 31})
}
