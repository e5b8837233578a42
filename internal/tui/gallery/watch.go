package gallery

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/styled/internal/logger"
)

// Loader rebuilds the gallery entries from the watched sheet.
type Loader func() ([]Entry, error)

// Watcher reloads a sheet when it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     *logger.Logger
}

// NewWatcher starts watching path. The parent directory is watched so editors
// that replace the file on save are still noticed.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{path: abs, watcher: fw, log: log.WithFields(map[string]any{"sheet": abs})}, nil
}

// Run delivers a ReloadMsg through send after every change to the sheet until
// ctx is done. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, load Loader, send func(tea.Msg)) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.log.Warn("sheet removed, waiting for it to reappear")
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.log.Debugf("sheet changed: %s", event.Op)
			entries, err := load()
			if err != nil {
				w.log.Error(err, "sheet reload failed")
			} else {
				w.log.Info("sheet reloaded")
			}
			send(ReloadMsg{Entries: entries, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watch error")
		}
	}
}

// Close stops watching without waiting for Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
