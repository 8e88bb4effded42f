package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WeaponWatcher reloads a weapons file whenever it changes on disk. Parsed
// tables arrive on Tables; the caller decides when to swap them in.
type WeaponWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Tables  chan WeaponTable
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchWeapons watches the directory holding path so that editors which
// replace the file instead of writing it in place are seen too.
func WatchWeapons(path string) (*WeaponWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &WeaponWatcher{
		watcher: w,
		path:    abs,
		Tables:  make(chan WeaponTable, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *WeaponWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// settleDelay coalesces the truncate and write events of a single save.
const settleDelay = 50 * time.Millisecond

func (w *WeaponWatcher) run() {
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle = time.After(settleDelay)
		case <-settle:
			settle = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *WeaponWatcher) reload() {
	f, err := os.Open(w.path)
	if err != nil {
		w.sendErr(fmt.Errorf("reloading weapons: %w", err))
		return
	}
	defer f.Close()

	table, err := LoadWeapons(f)
	if err != nil {
		w.sendErr(fmt.Errorf("reloading weapons: %w", err))
		return
	}

	// keep only the newest table
	select {
	case <-w.Tables:
	default:
	}
	select {
	case w.Tables <- table:
	case <-w.closeCh:
	}
}

func (w *WeaponWatcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
