package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/notifier/internal/errors"
)

// watchDebounce absorbs the burst of events editors emit for one save.
const watchDebounce = 150 * time.Millisecond

// watchConfig calls reload after each change to path until ctx is done.
// Reload failures are logged and the previous output is kept.
func watchConfig(ctx context.Context, path string, logger *slog.Logger, reload func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.FromError(err, "N011").WithDetail("cannot watch " + path)
	}
	defer w.Close()

	// Watch the directory; editors often replace the file on save.
	dir, file := filepath.Dir(path), filepath.Base(path)
	if err := w.Add(dir); err != nil {
		return errors.FromError(err, "N011").WithDetail("cannot watch " + dir)
	}
	logger.Info("watching config", "path", path)

	d := newDebouncer(watchDebounce, func() {
		if err := reload(); err != nil {
			logger.Warn("config reload failed", "path", path, "error", err)
			return
		}
		logger.Debug("config reloaded", "path", path)
	})
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				d.schedule()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watch error", "error", err)
		}
	}
}

// debouncer runs fn once a burst of schedule calls has been quiet for delay.
// Runs never overlap: a run that becomes due while another is in progress
// waits for it to finish.
type debouncer struct {
	delay time.Duration
	fn    func()

	mu    sync.Mutex
	timer *time.Timer
	run   sync.Mutex
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.run.Lock()
		defer d.run.Unlock()
		d.fn()
	})
}

// stop cancels a pending run and waits for one in progress.
func (d *debouncer) stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.run.Lock()
	d.run.Unlock()
}
