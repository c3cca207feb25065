package app

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// skippedWatchDirs are never watched; they churn without changing what the
// file list shows.
var skippedWatchDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

func skipWatchDir(name string) bool {
	return skippedWatchDirs[name] || strings.HasPrefix(name, ".")
}

// dirWatcher reports that something under root changed. It only forwards
// notifications; the rescan itself runs on the application goroutine.
type dirWatcher struct {
	w       *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

func newDirWatcher(root string) (*dirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dw := &dirWatcher{
		w:       w,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	dw.addTree(root)
	go dw.loop()
	return dw, nil
}

// addTree watches dir and every directory below it.
func (dw *dirWatcher) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && skipWatchDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := dw.w.Add(p); err != nil {
			log.Printf("watch %s: %v", p, err)
		}
		return nil
	})
}

func (dw *dirWatcher) loop() {
	defer close(dw.done)
	for {
		select {
		case ev, ok := <-dw.w.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if ev.Has(fsnotify.Create) && !skipWatchDir(filepath.Base(ev.Name)) {
				dw.addTree(ev.Name)
			}
			select {
			case dw.changes <- struct{}{}:
			default:
			}
		case err, ok := <-dw.w.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}

// Changes delivers at most one pending notification at a time.
func (dw *dirWatcher) Changes() <-chan struct{} {
	return dw.changes
}

func (dw *dirWatcher) Close() {
	_ = dw.w.Close()
	<-dw.done
}
