package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/lixenwraith/cellsplit/dsl"
	"github.com/lixenwraith/cellsplit/split"
)

// watchLayout reloads path on every write and passes the rebuilt tree to onLoad
// The parent directory is watched so editors that save by rename are seen
// Files that fail to parse are logged and the previous tree stays in place
func watchLayout(path string, onLoad func(split.Cell)) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}

	target, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(target))
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				root, err := dsl.Load(target)
				if err != nil {
					log.Printf("reload %s: %v", target, err)
					continue
				}
				log.Printf("reloaded %s", target)
				onLoad(root)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watcher: %v", err)
			}
		}
	}()

	return w.Close, nil
}
