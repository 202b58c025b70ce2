package core

// Color is an index into the terminal's 256-color palette.
type Color uint8

// Palette anchors used by the animator and the built-in palettes.
const (
	ColorBlack Color = 0
	ColorWhite Color = 15

	// ColorCubeStart is the first index of the 6x6x6 color cube.
	ColorCubeStart Color = 16
	// ColorGrayStart is the first index of the 24-step grayscale ramp.
	ColorGrayStart Color = 232
)

// PaletteSpan is the exclusive upper bound of the color phase range [0,255).
const PaletteSpan = 255

// Cell is a single painted terminal cell.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// BlankCell returns a space on the given background.
func BlankCell(bg Color) Cell {
	return Cell{Rune: ' ', Fg: ColorWhite, Bg: bg}
}
