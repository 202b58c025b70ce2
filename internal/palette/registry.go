// Package palette provides a global registry of color palettes.
// A palette maps the animator's color phase to a 256-color index.
// Palettes register themselves in init() functions, allowing the CLI
// to list and select them by ID.
package palette

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/walker/internal/core"
)

// Palette maps a monotonically increasing phase to a color.
// Implementations must return a color in [0, core.PaletteSpan).
type Palette interface {
	// ID returns a unique identifier (e.g., "spectrum").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Color returns the color for the given phase.
	Color(phase uint64) core.Color
}

// Info contains metadata about a registered palette.
type Info struct {
	ID    string
	Title string
}

var (
	palettes = make(map[string]Palette)
	mu       sync.RWMutex
)

// Register adds a palette to the registry.
// Panics if a palette with the same ID is already registered.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := palettes[p.ID()]; exists {
		panic(fmt.Sprintf("palette: %q already registered", p.ID()))
	}
	palettes[p.ID()] = p
}

// List returns information about all registered palettes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(palettes))
	for id, p := range palettes {
		result = append(result, Info{ID: id, Title: p.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the palette registered under id.
// Returns an error if the ID is not registered.
func Get(id string) (Palette, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := palettes[id]
	if !ok {
		return nil, fmt.Errorf("palette: unknown palette %q", id)
	}
	return p, nil
}

// Exists checks if a palette with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := palettes[id]
	return ok
}
