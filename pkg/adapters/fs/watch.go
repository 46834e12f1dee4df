package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"

	"github.com/aretw0/jot/pkg/core"
)

// Watch reports changes made to the backing file by any process.
// The parent directory is watched rather than the file itself, because
// atomic saves replace the file's inode on every write.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to watch %s: %w", dir, err), watcher.Close())
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "error", err)
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		}
	}))

	return events, nil
}

// watchLoop filters directory events down to the backing file and
// coalesces bursts into a single event per debounce window.
func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Event) error {
	var (
		pending *core.Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			eType := r.mapEventType(event)
			if eType == "" {
				continue
			}
			r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			pending = &core.Event{Type: eType, Path: r.Path, Timestamp: time.Now().Unix()}
			if timer == nil {
				timer = time.NewTimer(r.config.Debounce)
			} else {
				timer.Reset(r.config.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending == nil {
				continue
			}
			select {
			case out <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
			if r.config.ErrorHandler != nil {
				r.config.ErrorHandler(wErr)
			}
		}
	}
}

// mapEventType returns the change kind for events on the backing file,
// or "" for anything else (other files, temp files, chmod).
func (r *Repository) mapEventType(event fsnotify.Event) core.EventType {
	name := filepath.Clean(event.Name)
	if strings.HasPrefix(filepath.Base(name), TempFilePrefix) {
		return ""
	}
	if name != r.Path {
		return ""
	}

	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}
