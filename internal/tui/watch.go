package tui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/selmark/internal/logger"
)

// watcher reloads the viewer when the source file changes on disk. The
// watch covers the containing directory: editors that save by rename
// would otherwise leave the watch on a dead inode.
type watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// watchFile invokes notify on each write to path. notify is called from
// the watch goroutine.
func watchFile(path string, notify func()) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &watcher{fsw: fsw, done: make(chan struct{})}
	go w.loop(abs, notify)
	return w, nil
}

func (w *watcher) loop(path string, notify func()) {
	log := logger.Named("watch")
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				notify()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watch error")
		}
	}
}

// Close stops the watch goroutine and releases the watcher.
func (w *watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
