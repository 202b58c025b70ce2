package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/walker/internal/core"
	"github.com/vovakirdan/walker/internal/palette"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per fg/bg pair.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(int(fg)))).
		Background(lipgloss.Color(strconv.Itoa(int(bg))))
	c[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// PaletteSwatch renders the first n colors of p as a strip of blocks.
func PaletteSwatch(p palette.Palette, n int) string {
	styles := styleCache{}
	var sb strings.Builder
	for phase := uint64(0); phase < uint64(n); phase++ {
		c := p.Color(phase)
		sb.WriteString(styles.get(c, c).Render(" "))
	}
	return sb.String()
}
