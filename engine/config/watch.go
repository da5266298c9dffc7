package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long the file must stay quiet before it is re-read.
const reloadDelay = 100 * time.Millisecond

// Watcher re-reads a config file whenever it changes and publishes the result on Updates.
// Only the newest valid config is kept if the reader falls behind. Invalid files are logged
// and skipped.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *log.Logger

	updates chan Config
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The parent directory is watched rather than the file so that
// editors which save by rename are still seen.
//
// Parameters:
//   - path: the config file to watch
//   - logger: destination for reload errors (nil uses the standard logger)
//
// Returns:
//   - *Watcher: the running watcher
//   - error: an error if the fsnotify watcher could not be created or the directory added
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if logger == nil {
		logger = log.Default()
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		logger:  logger,
		updates: make(chan Config, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates returns the channel that receives each successfully reloaded config.
// The channel is closed by Close.
func (w *Watcher) Updates() <-chan Config {
	return w.updates
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.updates)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("[Config] watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Printf("[Config] reload skipped: %v", err)
		return
	}
	w.logger.Printf("[Config] reloaded %s", w.path)

	// Replace any update the reader has not picked up yet.
	select {
	case w.updates <- cfg:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- cfg
	}
}
