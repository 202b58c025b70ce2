package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk and publishes
// each valid result on Updates. Invalid edits are logged and skipped, so the
// running animation keeps its last good config.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	logger   *log.Logger
	updates  chan Config
	debounce time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path. The parent directory is watched
// rather than the file, so editors that save by rename are still seen.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create file watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		fs:       fsWatcher,
		logger:   logger,
		updates:  make(chan Config, 1),
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce overrides the settle delay. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Updates returns the channel reloaded configs are sent on.
// Only the newest unread config is kept.
func (w *Watcher) Updates() <-chan Config {
	return w.updates
}

// Start begins watching until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.watchLoop(ctx)
}

// Close stops the watcher and releases the underlying file watcher.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

// watchLoop waits for file system events and reloads after a quiet period.
func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	var settle *time.Timer
	var settleC <-chan time.Time
	defer func() {
		if settle != nil {
			settle.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("config file changed", "path", w.path, "op", event.Op.String())
			if settle == nil {
				settle = time.NewTimer(w.debounce)
			} else {
				settle.Reset(w.debounce)
			}
			settleC = settle.C

		case <-settleC:
			settleC = nil
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

// reload reads and validates the file, then publishes it.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("cannot read config", "path", w.path, "error", err)
		return
	}
	cfg, err := Parse(data)
	if err != nil {
		w.logger.Warn("ignoring invalid config", "path", w.path, "error", err)
		return
	}

	// Replace an unread config rather than block the watcher.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", "path", w.path)
}
