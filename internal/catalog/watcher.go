// file: internal/catalog/watcher.go
// version: 1.1.0
// guid: 120462f5-25cd-42e2-9d43-1212c1f37832

package catalog

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default settle period before a reload fires.
const DefaultDebounce = 2 * time.Second

// ReloadFunc is invoked after catalog file events settle.
type ReloadFunc func(path string)

// Watcher monitors a catalog seed file and invokes a reload callback after
// a debounce period, so editors that write in several bursts trigger one
// reload instead of many.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	reload    ReloadFunc
	stop      chan struct{}
	stopped   chan struct{}
	mu        sync.Mutex
	timer     *time.Timer
	running   bool
}

// NewWatcher creates a Watcher. Pass 0 for debounce to use DefaultDebounce.
func NewWatcher(reload ReloadFunc, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		reload:   reload,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins watching the catalog file. It watches the parent directory
// because many editors replace files on save, which drops the watch on the
// file itself. Safe to call only once.
func (w *Watcher) Start(path string) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.abortStart()
		return err
	}
	w.fsWatcher = fsw
	w.path = path

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		w.fsWatcher = nil
		w.abortStart()
		return err
	}

	go w.eventLoop()
	return nil
}

// abortStart rolls back the running flag when Start fails before the event
// loop exists, so a later Stop does not wait on a loop that never ran.
func (w *Watcher) abortStart() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

// Stop gracefully shuts down the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stop)
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	<-w.stopped

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
}

func (w *Watcher) eventLoop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ERROR] catalog watcher: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	relevant := event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0
	if !relevant {
		return
	}
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	w.scheduleReload()
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.timer = nil
		w.mu.Unlock()

		log.Printf("[INFO] catalog watcher: reloading %s", w.path)
		if w.reload != nil {
			w.reload(w.path)
		}
	})
}
