package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the settings file when it changes and hands the result to
// a callback. It watches the containing directory rather than the file so
// editors that replace the file on save keep triggering events.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching path and calls onChange with freshly loaded settings
// after every write. Load errors are logged and skipped; the previous
// settings stay in effect.
func Watch(path string, onChange func(Settings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{path: abs, watcher: fw, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(Settings)) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				log.Printf("settings reload: %v", err)
				continue
			}
			onChange(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("settings watcher: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
