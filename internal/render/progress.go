package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Progress reports files the renderer has written into the session tree.
type Progress struct {
	TaskID string
	Files  int
	Path   string
}

// progressWatcher follows a session directory while the renderer runs.
// fsnotify is not recursive, so directories are added as they appear.
type progressWatcher struct {
	watcher *fsnotify.Watcher
	taskID  string
	notify  func(Progress)
	seen    map[string]struct{}
	done    chan struct{}
	once    sync.Once
}

func watchProgress(root, taskID string, notify func(Progress)) (*progressWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create progress watcher: %w", err)
	}

	pw := &progressWatcher{
		watcher: w,
		taskID:  taskID,
		notify:  notify,
		seen:    make(map[string]struct{}),
		done:    make(chan struct{}),
	}

	if err := w.Add(root); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}

	go pw.loop()
	return pw, nil
}

func (pw *progressWatcher) loop() {
	defer close(pw.done)

	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				pw.handle(event.Name)
			}
		case _, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (pw *progressWatcher) handle(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	if !info.IsDir() {
		pw.record(path)
		return
	}

	// Nested directories may be created faster than they can be added, so
	// anything already inside is picked up here.
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = pw.watcher.Add(p)
			return nil
		}
		pw.record(p)
		return nil
	})
}

func (pw *progressWatcher) record(path string) {
	if _, ok := pw.seen[path]; ok {
		return
	}
	pw.seen[path] = struct{}{}

	if pw.notify != nil {
		pw.notify(Progress{
			TaskID: pw.taskID,
			Files:  len(pw.seen),
			Path:   path,
		})
	}
}

// Stop closes the watcher and waits for the event loop to drain.
func (pw *progressWatcher) Stop() {
	pw.once.Do(func() {
		pw.watcher.Close()
		<-pw.done
	})
}
