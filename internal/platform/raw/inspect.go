package raw

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/walker/internal/ansi"
)

// Inspect prints one line per decoded key event until q or ctrl+c is
// pressed, in closes or ctx is done. With kitty set it asks the terminal
// for press, repeat and release reports.
func Inspect(ctx context.Context, in io.Reader, out io.Writer, kitty bool) error {
	restore, err := makeRaw(in)
	if err != nil {
		return fmt.Errorf("raw: cannot enter raw mode: %w", err)
	}
	defer restore()

	w := ansi.NewWriter(out)
	if kitty {
		w.PushKittyFlags(ansi.KittyKeyEvents)
		defer func() {
			w.PopKittyFlags()
			//nolint:errcheck // Best-effort restore on the way out
			w.Flush()
		}()
	}
	w.WriteString("press keys to inspect them, q or ctrl+c to exit\r\n")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("raw: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	chunks := readInput(in, done)
	keys := newKeyStream(EscTimeout)
	defer keys.stop()

	report := func(events []ansi.Event) (bool, error) {
		for _, ev := range events {
			w.WriteString(DescribeEvent(ev))
			w.WriteString("\r\n")
			if ev.Kind != ansi.KindRelease && (ev.String() == "q" || ev.String() == "ctrl+c") {
				return true, w.Flush()
			}
		}
		return false, w.Flush()
	}

	for {
		var events []ansi.Event
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-chunks:
			if !ok {
				_, err := report(keys.expire())
				return err
			}
			events = keys.feed(data)
		case <-keys.C:
			events = keys.expire()
		}

		quit, err := report(events)
		if err != nil {
			return fmt.Errorf("raw: %w", err)
		}
		if quit {
			return nil
		}
	}
}

// DescribeEvent formats an event as "name  mods=...  kind=...  raw=...".
func DescribeEvent(ev ansi.Event) string {
	var mods []string
	if ev.Mod&ansi.ModShift != 0 {
		mods = append(mods, "shift")
	}
	if ev.Mod&ansi.ModAlt != 0 {
		mods = append(mods, "alt")
	}
	if ev.Mod&ansi.ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	modStr := "none"
	if len(mods) > 0 {
		modStr = strings.Join(mods, "+")
	}
	return fmt.Sprintf("%-12s mods=%-14s kind=%-7s raw=%q", ev.String(), modStr, ev.Kind, ev.Raw)
}
