package raw

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walker/internal/animator"
	"github.com/vovakirdan/walker/internal/ansi"
	"github.com/vovakirdan/walker/internal/config"
	"github.com/vovakirdan/walker/internal/core"
)

// Runner owns the terminal and the animator for one run.
// All state is touched only by the Run loop.
type Runner struct {
	cfg      config.Config
	anim     *animator.Animator
	bindings core.Bindings

	in     io.Reader
	out    io.Writer
	w      *ansi.Writer
	size   SizeFunc
	logger *log.Logger

	ticks      <-chan time.Time // injected tick source; nil means a real ticker
	resize     <-chan os.Signal // injected resize source; nil means SIGWINCH
	reload     <-chan config.Config
	escTimeout time.Duration

	ticker    *time.Ticker
	altScreen bool // alt_screen at start; reloads do not change it
	alt       bool // alternate screen entered
	kitty     bool // kitty keyboard flags pushed
}

// Option configures a Runner.
type Option func(*Runner)

// WithInput sets the key source. Defaults to os.Stdin.
func WithInput(in io.Reader) Option {
	return func(r *Runner) { r.in = in }
}

// WithOutput sets the canvas. Defaults to os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) { r.out = out }
}

// WithSizeFunc overrides how the screen size is read.
func WithSizeFunc(fn SizeFunc) Option {
	return func(r *Runner) { r.size = fn }
}

// WithTicker replaces the real ticker with ch.
func WithTicker(ch <-chan time.Time) Option {
	return func(r *Runner) { r.ticks = ch }
}

// WithResize replaces SIGWINCH delivery with ch.
func WithResize(ch <-chan os.Signal) Option {
	return func(r *Runner) { r.resize = ch }
}

// WithReload applies every config received on ch while running.
func WithReload(ch <-chan config.Config) Option {
	return func(r *Runner) { r.reload = ch }
}

// WithLogger sets the logger. Logs must not go to the canvas.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithEscTimeout overrides how long a lone ESC waits.
func WithEscTimeout(d time.Duration) Option {
	return func(r *Runner) { r.escTimeout = d }
}

// New creates a runner for cfg.
func New(cfg config.Config, opts ...Option) (*Runner, error) {
	animOpts, err := cfg.AnimatorOptions()
	if err != nil {
		return nil, fmt.Errorf("raw: %w", err)
	}

	r := &Runner{
		cfg:        cfg,
		anim:       animator.New(animOpts),
		bindings:   cfg.Bindings(),
		in:         os.Stdin,
		out:        os.Stdout,
		escTimeout: EscTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.size == nil {
		r.size = TerminalSize(r.out)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	r.w = ansi.NewWriter(r.out)
	return r, nil
}

// Animator exposes the animator for inspection after Run returns.
func (r *Runner) Animator() *animator.Animator {
	return r.anim
}

// Run animates until a quit key is pressed or ctx is done, then restores the
// terminal and prints the farewell. A clean shutdown returns nil.
func (r *Runner) Run(ctx context.Context) error {
	restore, err := makeRaw(r.in)
	if err != nil {
		return fmt.Errorf("raw: cannot enter raw mode: %w", err)
	}

	r.altScreen = r.cfg.AltScreen
	w, h := r.size()
	r.anim.Reset(r.cfg.Runtime(w, h))
	r.logger.Info("starting", "width", w, "height", h, "tick_rate", r.cfg.TickRate,
		"velocity", r.cfg.Velocity, "palette", r.cfg.Palette)
	r.init()

	done := make(chan struct{})
	defer close(done)
	chunks := readInput(r.in, done)
	keys := newKeyStream(r.escTimeout)
	defer keys.stop()

	ticks := r.ticks
	if ticks == nil {
		r.ticker = time.NewTicker(r.cfg.Runtime(w, h).Interval())
		defer r.ticker.Stop()
		ticks = r.ticker.C
	}

	resize := r.resize
	if resize == nil {
		var stop func()
		resize, stop = notifyResize()
		defer stop()
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("interrupted", "reason", context.Cause(ctx))
			return r.shutdown(restore)

		case data, ok := <-chunks:
			if !ok {
				// Input is gone: resolve what is buffered and keep animating
				// until a signal stops us.
				chunks = nil
				r.logger.Debug("input closed")
				if r.handleEvents(keys.expire()) {
					return r.shutdown(restore)
				}
				continue
			}
			if r.handleEvents(keys.feed(data)) {
				return r.shutdown(restore)
			}

		case <-keys.C:
			if r.handleEvents(keys.expire()) {
				return r.shutdown(restore)
			}

		case <-resize:
			r.handleResize()

		case cfg := <-r.reload:
			r.applyConfig(cfg)

		case <-ticks:
			r.tick()
		}
	}
}

// init prepares the screen: alternate buffer, kitty flags for hold mode,
// background color, clear and hidden cursor.
func (r *Runner) init() {
	if r.altScreen && !r.alt {
		r.w.EnterAltScreen()
		r.alt = true
	}
	r.syncKitty()
	r.w.Bg(uint8(r.cfg.Background))
	r.w.Clear()
	r.w.HideCursor()
	r.flush()
}

// syncKitty pushes or pops kitty flags so they are on exactly in hold mode.
func (r *Runner) syncKitty() {
	want := r.anim.Mode() == animator.VelocityHold
	switch {
	case want && !r.kitty:
		r.w.PushKittyFlags(ansi.KittyKeyEvents)
	case !want && r.kitty:
		r.w.PopKittyFlags()
	}
	r.kitty = want
}

// handleEvents applies decoded keys in order and reports whether to quit.
func (r *Runner) handleEvents(events []ansi.Event) bool {
	for _, ev := range events {
		if r.handleKey(ev) {
			return true
		}
	}
	return false
}

// handleKey maps one event to an action. Unbound keys do nothing.
func (r *Runner) handleKey(ev ansi.Event) bool {
	act := r.bindings.Lookup(ev.String())
	r.logger.Debug("key", "key", ev.String(), "kind", ev.Kind, "action", act)

	if act == core.ActionQuit {
		return ev.Kind != ansi.KindRelease
	}
	if ev.Kind == ansi.KindRelease {
		r.anim.Release(act)
		return false
	}
	r.anim.Press(act)
	return false
}

// handleResize re-reads the size, folds the position and redraws.
func (r *Runner) handleResize() {
	w, h := r.size()
	r.anim.Resize(w, h)
	r.logger.Debug("resized", "width", w, "height", h)
	r.init()
}

// applyConfig swaps in a reloaded config without restarting the run.
func (r *Runner) applyConfig(cfg config.Config) {
	opts, err := cfg.AnimatorOptions()
	if err != nil {
		r.logger.Warn("ignoring reloaded config", "error", err)
		return
	}
	r.anim.Configure(opts)
	r.bindings = cfg.Bindings()
	if r.ticker != nil && cfg.TickRate != r.cfg.TickRate {
		r.ticker.Reset(cfg.Runtime(0, 0).Interval())
	}
	r.cfg = cfg
	r.logger.Info("applied config", "tick_rate", cfg.TickRate, "velocity", cfg.Velocity, "palette", cfg.Palette)
	r.init()
}

// tick advances the animator and paints its cell.
func (r *Runner) tick() {
	p := r.anim.Step()
	r.w.CursorTo(p.Col, p.Row)
	r.w.Fg(uint8(p.Cell.Fg))
	r.w.Bg(uint8(p.Cell.Bg))
	r.w.WriteRune(p.Cell.Rune)
	r.flush()
}

// shutdown restores the terminal and prints the farewell.
func (r *Runner) shutdown(restore func()) error {
	if r.kitty {
		r.w.PopKittyFlags()
		r.kitty = false
	}
	r.w.ShowCursor()
	r.w.Reset()
	r.w.FgWhite()
	r.w.Bg(uint8(core.ColorBlack))
	if r.alt {
		r.w.ExitAltScreen()
		r.alt = false
	}
	r.flush()
	restore()

	if r.cfg.Farewell != "" {
		// Start on a fresh line when the canvas stays on the main screen.
		fmt.Fprintf(r.out, "\r\n%s\n", r.cfg.Farewell)
	}
	r.logger.Info("stopped", "ticks", r.anim.Snapshot().Tick)
	return nil
}

func (r *Runner) flush() {
	if err := r.w.Flush(); err != nil {
		r.logger.Warn("write failed", "error", err)
	}
}
