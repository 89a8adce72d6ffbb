package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk.
// Parsed tunings arrive on Updates; the receiver decides when to Apply them,
// which keeps config writes on the game loop goroutine.
type TuningWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. The containing directory is watched so
// editors that save via rename are still picked up.
func WatchTuning(path string) (*TuningWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch tuning %s: %w", path, err)
	}

	tw := &TuningWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. Updates and Errors are closed once the watch
// goroutine exits.
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer close(tw.Updates)
	defer close(tw.Errors)

	// Saves often arrive as truncate + write; reload once the file settles.
	settle := time.NewTimer(time.Hour)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			settle.Reset(reloadDebounce)
		case <-settle.C:
			t, err := LoadTuning(tw.path)
			if err != nil {
				tw.sendErr(err)
				continue
			}
			log.Printf("[config] Tuning reloaded from %s", tw.path)
			select {
			case tw.Updates <- t:
			case <-tw.closeCh:
				return
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.sendErr(err)
		case <-tw.closeCh:
			return
		}
	}
}

// sendErr drops errors when the receiver is behind; the latest file state
// is what matters.
func (tw *TuningWatcher) sendErr(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
