package ansi

import (
	"fmt"
	"strings"
)

// Key identifies a decoded key. Printable keys use KeyRune with Event.Rune set.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPgUp
	KeyPgDown
)

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
}

// Modifier is a bitmask of held modifier keys.
// Values follow the xterm/kitty encoding (parameter value minus one).
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Kind distinguishes press, repeat and release. Terminals without the kitty
// protocol only ever report presses.
type Kind uint8

const (
	KindPress Kind = iota
	KindRepeat
	KindRelease
)

func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRepeat:
		return "repeat"
	case KindRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one decoded key event.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
	Kind Kind
	Raw  []byte // bytes the event was decoded from
}

// String names the key the way Bubble Tea does: modifiers first
// ("ctrl+", "alt+", "shift+"), then the key ("up", "esc", "a", " ").
func (e Event) String() string {
	var sb strings.Builder
	if e.Mod&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if e.Mod&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if e.Mod&ModShift != 0 {
		sb.WriteString("shift+")
	}

	switch e.Key {
	case KeyRune:
		sb.WriteRune(e.Rune)
	case KeyNone:
		sb.WriteString("none")
	default:
		if name, ok := keyNames[e.Key]; ok {
			sb.WriteString(name)
		} else {
			fmt.Fprintf(&sb, "key(%d)", e.Key)
		}
	}
	return sb.String()
}
