// Package watch re-runs work when a source file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op indicates a change operation in the filesystem.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Event describes a filesystem change event.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher forwards fsnotify events as Events.
type Watcher struct {
	w     *fsnotify.Watcher
	evC   chan Event
	erC   chan error
	done  chan struct{}
	close sync.Once
}

// NewWatcher creates a Watcher. Call Add for each path of interest.
func NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{
		w:    w,
		evC:  make(chan Event, 128),
		erC:  make(chan error, 1),
		done: make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			select {
			case fw.evC <- Event{Path: ev.Name, Op: convertOp(ev.Op), Time: time.Now()}:
			case <-fw.done:
				return
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			select {
			case fw.erC <- err:
			default:
			}
		case <-fw.done:
			return
		}
	}
}

func convertOp(in fsnotify.Op) Op {
	var op Op
	if in.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if in.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if in.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if in.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if in.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}

// Events returns translated file system events.
func (fw *Watcher) Events() <-chan Event { return fw.evC }

// Errors returns watcher errors. An error arriving while another is still
// unread is dropped.
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Add starts watching name, a file or a directory.
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Close stops the watcher. It is safe to call more than once.
func (fw *Watcher) Close() error {
	var err error
	fw.close.Do(func() {
		close(fw.done)
		err = fw.w.Close()
	})
	return err
}

// Run calls fn after every burst of writes to path until ctx is cancelled.
// Events closer together than debounce collapse into one call. The parent
// directory is watched so that editors replacing the file are noticed.
func Run(ctx context.Context, path string, debounce time.Duration, fn func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	match := func(ev Event) bool {
		if ev.Op&(OpWrite|OpCreate) == 0 {
			return false
		}
		abs, err := filepath.Abs(ev.Path)
		return err == nil && abs == target
	}

	return debounceEvents(ctx, w.Events(), w.Errors(), match, debounce, fn)
}

// debounceEvents drains events, calling fn once the matching ones have been
// quiet for wait. It returns nil when ctx is cancelled or events is closed,
// and the first watcher error wrapped with a "watch:" prefix.
func debounceEvents(ctx context.Context, events <-chan Event, errs <-chan error, match func(Event) bool, wait time.Duration, fn func()) error {
	var (
		timer   *time.Timer
		timeout <-chan time.Time
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
		case err := <-errs:
			return fmt.Errorf("watch: %w", err)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !match(ev) {
				continue
			}
			if wait <= 0 {
				fn()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(wait)
			} else {
				timer.Stop()
				timer.Reset(wait)
			}
			timeout = timer.C
		case <-timeout:
			timeout = nil
			fn()
		}
	}
}
