package palette

import (
	"testing"

	"github.com/vovakirdan/walker/internal/core"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"spectrum", "gradient", "grayscale", "fire"} {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
	}
	if !Exists(Default) {
		t.Errorf("default palette %q is not registered", Default)
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) < 4 {
		t.Fatalf("List() returned %d palettes, expected at least 4", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope) should return an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register(ramp{id: "spectrum", title: "dup", count: 1})
}

func TestSpectrumCyclesModulo255(t *testing.T) {
	p, err := Get("spectrum")
	if err != nil {
		t.Fatalf("Get(spectrum) failed: %v", err)
	}

	tests := []struct {
		phase    uint64
		expected core.Color
	}{
		{0, 0},
		{1, 1},
		{254, 254},
		{255, 0},
		{256, 1},
		{510, 0},
	}

	for _, tc := range tests {
		if got := p.Color(tc.phase); got != tc.expected {
			t.Errorf("Color(%d) = %d, expected %d", tc.phase, got, tc.expected)
		}
	}
}

func TestAllPalettesStayInRange(t *testing.T) {
	for _, info := range List() {
		p, err := Get(info.ID)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", info.ID, err)
		}
		t.Run(info.ID, func(t *testing.T) {
			for phase := uint64(0); phase < 3*core.PaletteSpan; phase++ {
				if c := p.Color(phase); int(c) >= core.PaletteSpan {
					t.Fatalf("Color(%d) = %d, outside [0,%d)", phase, c, core.PaletteSpan)
				}
			}
		})
	}
}

func TestGradientSkipsSystemColors(t *testing.T) {
	p, _ := Get("gradient")
	for phase := uint64(0); phase < 500; phase++ {
		if c := p.Color(phase); c < core.ColorCubeStart {
			t.Fatalf("Color(%d) = %d, expected >= %d", phase, c, core.ColorCubeStart)
		}
	}
}

func TestFirePingPong(t *testing.T) {
	p, _ := Get("fire")

	if got := p.Color(0); got != 196 {
		t.Errorf("Color(0) = %d, expected 196", got)
	}
	if got := p.Color(30); got != 226 {
		t.Errorf("Color(30) = %d, expected 226", got)
	}
	if got := p.Color(31); got != 225 {
		t.Errorf("Color(31) = %d, expected 225", got)
	}
	if got := p.Color(60); got != 196 {
		t.Errorf("Color(60) = %d, expected 196 (full cycle)", got)
	}
}
