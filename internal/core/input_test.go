package core

import (
	"reflect"
	"testing"
)

func TestDefaultBindingsLookup(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		key      string
		expected Action
	}{
		{"up", ActionUp},
		{"w", ActionUp},
		{"down", ActionDown},
		{"s", ActionDown},
		{"left", ActionLeft},
		{"a", ActionLeft},
		{"right", ActionRight},
		{"d", ActionRight},
		{"q", ActionQuit},
		{"esc", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"x", ActionNone},
		{"W", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		if got := b.Lookup(tc.key); got != tc.expected {
			t.Errorf("Lookup(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestBindingsFirstActionWins(t *testing.T) {
	b := NewBindings(map[Action][]string{
		ActionUp:   {"k"},
		ActionQuit: {"k", "q"},
	})

	if got := b.Lookup("k"); got != ActionUp {
		t.Errorf("Lookup(k) = %v, expected Up", got)
	}
	if got := b.Lookup("q"); got != ActionQuit {
		t.Errorf("Lookup(q) = %v, expected Quit", got)
	}
}

func TestBindingsKeys(t *testing.T) {
	b := DefaultBindings()

	got := b.Keys(ActionQuit)
	expected := []string{"ctrl+c", "esc", "q"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Keys(Quit) = %v, expected %v", got, expected)
	}
}

func TestZeroBindings(t *testing.T) {
	var b Bindings
	if got := b.Lookup("q"); got != ActionNone {
		t.Errorf("zero Bindings Lookup = %v, expected None", got)
	}
}

func TestActionVec(t *testing.T) {
	tests := []struct {
		a   Action
		v   Vec
		dir bool
	}{
		{ActionUp, Vec{DY: -1}, true},
		{ActionDown, Vec{DY: 1}, true},
		{ActionLeft, Vec{DX: -1}, true},
		{ActionRight, Vec{DX: 1}, true},
		{ActionQuit, Vec{}, false},
		{ActionNone, Vec{}, false},
	}

	for _, tc := range tests {
		v, ok := tc.a.Vec()
		if v != tc.v || ok != tc.dir {
			t.Errorf("%v.Vec() = (%v, %v), expected (%v, %v)", tc.a, v, ok, tc.v, tc.dir)
		}
	}
}
