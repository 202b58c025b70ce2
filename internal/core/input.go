package core

import "sort"

// Action represents a semantic animator action, abstracted from physical key presses.
// This lets both runtimes share one binding table.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // Q, Escape, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Vec returns the unit velocity for a direction action.
// The second result is false for non-directional actions.
func (a Action) Vec() (Vec, bool) {
	switch a {
	case ActionUp:
		return Vec{DY: -1}, true
	case ActionDown:
		return Vec{DY: 1}, true
	case ActionLeft:
		return Vec{DX: -1}, true
	case ActionRight:
		return Vec{DX: 1}, true
	}
	return Vec{}, false
}

// Bindings maps key names (as produced by the key decoders, e.g. "up", "w",
// "ctrl+c") to actions.
type Bindings struct {
	byKey map[string]Action
}

// DefaultKeys returns the default key names for each action.
func DefaultKeys() map[Action][]string {
	return map[Action][]string{
		ActionUp:    {"up", "w"},
		ActionDown:  {"down", "s"},
		ActionLeft:  {"left", "a"},
		ActionRight: {"right", "d"},
		ActionQuit:  {"q", "esc", "ctrl+c"},
	}
}

// NewBindings builds a binding table. Later actions do not override a key
// already bound, and iteration is in action order so the result is stable.
func NewBindings(keys map[Action][]string) Bindings {
	b := Bindings{byKey: make(map[string]Action)}

	actions := make([]Action, 0, len(keys))
	for a := range keys {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		for _, k := range keys[a] {
			if _, taken := b.byKey[k]; !taken {
				b.byKey[k] = a
			}
		}
	}
	return b
}

// DefaultBindings returns the binding table for DefaultKeys.
func DefaultBindings() Bindings {
	return NewBindings(DefaultKeys())
}

// Lookup returns the action bound to key, or ActionNone.
func (b Bindings) Lookup(key string) Action {
	if b.byKey == nil {
		return ActionNone
	}
	return b.byKey[key]
}

// Keys returns the sorted key names bound to a.
func (b Bindings) Keys(a Action) []string {
	var out []string
	for k, act := range b.byKey {
		if act == a {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
