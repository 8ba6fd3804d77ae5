package catalog

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/alansaviolobo/atlaskit/pkg/debounce"
)

// Watcher reloads a local catalog file whenever it changes on disk.
//
// Editors produce bursts of write events for a single save, so reloads
// are debounced: only the last event of a burst triggers a load, and a
// pending reload is canceled when a newer event supersedes it.
type Watcher struct {
	path     string
	logger   *log.Logger
	onChange func(*Document, error)

	fs       *fsnotify.Watcher
	debounce *debounce.Debouncer
	done     chan struct{}
}

// Watch starts watching path and invokes onChange with each reloaded
// document (or the load error). The callback runs on the watcher's
// goroutine after the debounce delay.
func Watch(path string, delay time.Duration, logger *log.Logger, onChange func(*Document, error)) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors that rename-and-replace
	// would otherwise detach the watch on the first save.
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
		fs:       fs,
		debounce: debounce.New(delay),
		done:     make(chan struct{}),
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("catalog file changed", "event", event.Op.String())
			w.debounce.Trigger(w.reload)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("catalog watch error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	doc, err := Load(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous document", "error", err)
	}
	w.onChange(doc, err)
}

// Close stops watching and cancels any pending reload.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Stop()
	return w.fs.Close()
}
