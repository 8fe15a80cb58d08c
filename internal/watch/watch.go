// Package watch mirrors a real on-disk project into an in-memory VFS,
// the way cmd/fuego/commands/dev.go's runDev walks and watches a project
// tree — except here the watcher's job ends at keeping the VFS current,
// not at rebuilding a Go binary.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

var skippedDirNames = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".next":        true,
	"tmp":          true,
}

// Watcher keeps a vfs.MemFS synchronized with a real directory tree and
// invokes OnChange, debounced, whenever the tree settles after a burst of
// filesystem events.
type Watcher struct {
	Root   string
	FS     *vfs.MemFS
	fsw    *fsnotify.Watcher
	debounce time.Duration

	// OnChange is invoked, if set, after a debounced batch of changes has
	// been applied to FS. The changed paths are VFS-absolute.
	OnChange func(changed []string)
}

// New walks root, loads every regular file's content into a fresh
// vfs.MemFS, and prepares an fsnotify watch over every directory in the
// tree (skipping the usual non-source directories).
func New(root string) (*Watcher, error) {
	files := map[string]string{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if skippedDirNames[info.Name()] || strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		files["/"+filepath.ToSlash(rel)] = string(content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("watch: failed to walk %s: %w", root, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: failed to create watcher: %w", err)
	}

	w := &Watcher{
		Root:     root,
		FS:       vfs.NewMemFS(files),
		fsw:      fsw,
		debounce: 100 * time.Millisecond,
	}

	if err := w.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if skippedDirNames[info.Name()] || (strings.HasPrefix(info.Name(), ".") && path != root) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// vfsPath converts a real, on-disk path (relative or absolute) into a
// VFS-absolute path rooted at "/".
func (w *Watcher) vfsPath(diskPath string) (string, error) {
	rel, err := filepath.Rel(w.Root, diskPath)
	if err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(rel), nil
}

// Run blocks, applying filesystem events to FS as they arrive and
// calling OnChange once per debounce window. It returns when the
// underlying fsnotify watcher is closed or ctx-like stop is requested via
// Close.
func (w *Watcher) Run() error {
	var timer *time.Timer
	pending := map[string]bool{}

	flush := func() {
		if len(pending) == 0 {
			return
		}
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		pending = map[string]bool{}
		if w.OnChange != nil {
			w.OnChange(changed)
		}
	}

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				return nil
			}

			if err := w.apply(event); err != nil {
				continue
			}

			if vp, err := w.vfsPath(event.Name); err == nil {
				pending[vp] = true
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, flush)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// apply mirrors one fsnotify event into FS: writes on create/write,
// removes on remove/rename, and extends the watch to newly created
// directories.
func (w *Watcher) apply(event fsnotify.Event) error {
	vp, err := w.vfsPath(event.Name)
	if err != nil {
		return err
	}

	switch {
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.FS.RemoveFile(vp)
		return nil

	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		info, statErr := os.Stat(event.Name)
		if statErr != nil {
			w.FS.RemoveFile(vp)
			return nil
		}
		if info.IsDir() {
			if event.Op&fsnotify.Create != 0 {
				return w.addRecursive(event.Name)
			}
			return nil
		}
		content, readErr := os.ReadFile(event.Name)
		if readErr != nil {
			return readErr
		}
		w.FS.WriteFile(vp, content)
		return nil
	}

	return nil
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
