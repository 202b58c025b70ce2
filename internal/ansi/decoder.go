package ansi

import (
	"bytes"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// maxSeqLen bounds how far an unterminated CSI sequence is scanned before
// it is treated as garbage and dropped.
const maxSeqLen = 32

// Decoder turns a raw-mode byte stream into key events.
// Sequences may be split across Feed calls; an incomplete tail is kept until
// more bytes arrive or Flush is called.
type Decoder struct {
	buf []byte
}

// Feed appends data and returns every complete event it now holds.
func (d *Decoder) Feed(data []byte) []Event {
	d.buf = append(d.buf, data...)
	events, consumed := decode(d.buf, false)
	d.compact(consumed)
	return events
}

// Pending reports whether bytes are waiting for the rest of a sequence.
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

// Flush resolves whatever is buffered. A lone ESC becomes an Escape key;
// any other partial sequence is dropped.
func (d *Decoder) Flush() []Event {
	if len(d.buf) == 0 {
		return nil
	}
	events, _ := decode(d.buf, true)
	d.buf = d.buf[:0]
	return events
}

func (d *Decoder) compact(consumed int) {
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	n := copy(d.buf, d.buf[consumed:])
	d.buf = d.buf[:n]
}

// decode parses data and returns the events plus the number of bytes used.
// With final set, incomplete trailing input is resolved instead of kept.
func decode(data []byte, final bool) ([]Event, int) {
	var events []Event
	emit := func(ev Event, raw []byte) {
		ev.Raw = bytes.Clone(raw)
		events = append(events, ev)
	}

	i := 0
	n := len(data)
	for i < n {
		b := data[i]

		switch {
		case b == 0x1b:
			if i+1 >= n {
				if !final {
					return events, i
				}
				emit(Event{Key: KeyEscape}, data[i:i+1])
				i++
				continue
			}

			consumed, ev, ok := decodeEscape(data[i:])
			if consumed == 0 {
				if !final {
					return events, i
				}
				// Partial sequence at flush time: drop it.
				return events, n
			}
			if ok {
				emit(ev, data[i:i+consumed])
			}
			i += consumed

		case b >= 0x20 && b < 0x7f:
			emit(Event{Key: KeyRune, Rune: rune(b)}, data[i:i+1])
			i++

		case b < 0x20 || b == 0x7f:
			emit(decodeControl(b), data[i:i+1])
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				if !final {
					return events, i
				}
				return events, n
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				emit(Event{Key: KeyRune, Rune: r}, data[i:i+size])
			}
			i += size
		}
	}
	return events, i
}

// decodeControl maps a C0 control byte or DEL to a key.
func decodeControl(b byte) Event {
	switch b {
	case 0x0d, 0x0a:
		return Event{Key: KeyEnter}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x7f, 0x08:
		return Event{Key: KeyBackspace}
	case 0x1b:
		return Event{Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	// 0x00 and 0x1c-0x1f: ctrl+@ ctrl+\ ctrl+] ctrl+^ ctrl+_
	return Event{Key: KeyRune, Rune: rune(b + 0x40), Mod: ModCtrl}
}

// decodeEscape parses a sequence starting with ESC (len(data) >= 2).
// consumed == 0 means the sequence is incomplete; ok == false means the bytes
// were recognized as a sequence but carry no key.
func decodeEscape(data []byte) (consumed int, ev Event, ok bool) {
	switch c := data[1]; {
	case c == '[':
		return decodeCSI(data)

	case c == 'O':
		if len(data) < 3 {
			return 0, Event{}, false
		}
		if k, found := finalKey(data[2]); found {
			return 3, Event{Key: k}, true
		}
		return 3, Event{}, false

	case c == 0x1b:
		// ESC ESC: report the first, leave the second for the next round.
		return 1, Event{Key: KeyEscape}, true

	case c >= 0x20 && c < 0x7f:
		return 2, Event{Key: KeyRune, Rune: rune(c), Mod: ModAlt}, true

	case c < 0x20 || c == 0x7f:
		ev := decodeControl(c)
		ev.Mod |= ModAlt
		return 2, ev, true
	}

	return 1, Event{Key: KeyEscape}, true
}

// decodeCSI parses ESC [ params final.
func decodeCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}

	end := -1
	for j := 2; j < len(data) && j < maxSeqLen; j++ {
		c := data[j]
		if c >= 0x40 && c <= 0x7e {
			end = j
			break
		}
		if c < 0x20 || c > 0x7e {
			// Broken sequence; drop what was read and resync at c.
			return j, Event{}, false
		}
	}
	if end < 0 {
		if len(data) >= maxSeqLen {
			return maxSeqLen, Event{}, false
		}
		return 0, Event{}, false
	}

	consumed := end + 1
	params := data[2:end]
	final := data[end]

	// Private-marker replies (kitty flag queries, mouse reports) carry no key.
	if len(params) > 0 && params[0] >= '<' && params[0] <= '?' {
		return consumed, Event{}, false
	}

	fields := parseParams(params)
	code := fields.get(0, 0, 1)
	mods := fields.get(1, 0, 1)
	kind := fields.get(1, 1, 1)

	ev := Event{Mod: modifierFromParam(mods), Kind: kindFromParam(kind)}

	switch final {
	case '~':
		k, found := tildeKey(code)
		if !found {
			return consumed, Event{}, false
		}
		ev.Key = k

	case 'u':
		k, r, found := kittyKey(code)
		if !found {
			return consumed, Event{}, false
		}
		ev.Key, ev.Rune = k, r

	default:
		k, found := finalKey(final)
		if !found {
			return consumed, Event{}, false
		}
		ev.Key = k
	}

	return consumed, ev, true
}

// csiParams holds semicolon-separated fields, each split on colons.
type csiParams [][]int

func parseParams(p []byte) csiParams {
	if len(p) == 0 {
		return nil
	}
	var out csiParams
	for _, field := range bytes.Split(p, []byte{';'}) {
		var sub []int
		for _, part := range bytes.Split(field, []byte{':'}) {
			v, err := strconv.Atoi(string(part))
			if err != nil {
				v = -1
			}
			sub = append(sub, v)
		}
		out = append(out, sub)
	}
	return out
}

// get returns field[i][j], or def when missing or empty.
func (p csiParams) get(i, j, def int) int {
	if i >= len(p) || j >= len(p[i]) || p[i][j] < 0 {
		return def
	}
	return p[i][j]
}

func modifierFromParam(v int) Modifier {
	if v <= 1 {
		return 0
	}
	return Modifier(v-1) & (ModShift | ModAlt | ModCtrl)
}

func kindFromParam(v int) Kind {
	switch v {
	case 2:
		return KindRepeat
	case 3:
		return KindRelease
	}
	return KindPress
}

func finalKey(c byte) (Key, bool) {
	switch c {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return KeyNone, false
}

func tildeKey(code int) (Key, bool) {
	switch code {
	case 1, 7:
		return KeyHome, true
	case 2:
		return KeyInsert, true
	case 3:
		return KeyDelete, true
	case 4, 8:
		return KeyEnd, true
	case 5:
		return KeyPgUp, true
	case 6:
		return KeyPgDown, true
	}
	return KeyNone, false
}

// kittyKey maps a kitty CSI-u key code to a key.
func kittyKey(code int) (Key, rune, bool) {
	switch code {
	case 27:
		return KeyEscape, 0, true
	case 13:
		return KeyEnter, 0, true
	case 9:
		return KeyTab, 0, true
	case 127, 8:
		return KeyBackspace, 0, true
	}
	if code >= 0x20 && code <= utf8.MaxRune && code != 0x7f && !utf16.IsSurrogate(rune(code)) {
		return KeyRune, rune(code), true
	}
	return KeyNone, 0, false
}
