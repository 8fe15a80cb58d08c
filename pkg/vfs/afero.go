package vfs

import (
	"os"

	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs (in-memory via afero.NewMemMapFs, or real disk
// via afero.NewOsFs) to the FS contract. The CLI's routes and tailwind
// commands read a real project directory through it; the tests and the
// dev server's file watcher use MemFS instead.
type aferoFS struct {
	fs afero.Fs
}

// FromAfero wraps an afero.Fs as an FS. Errors from Stat and ReadDir are
// treated as absence, matching the VFS contract's "never throw" rule;
// ReadFile returns its error to the caller.
func FromAfero(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOsFS returns an FS rooted at the real filesystem via afero.NewOsFs,
// used by the routes and tailwind commands to read an actual Next.js
// project directory in place.
func NewOsFS() FS {
	return FromAfero(afero.NewOsFs())
}

func (a *aferoFS) Exists(path string) bool {
	_, err := a.fs.Stat(path)
	return err == nil
}

func (a *aferoFS) IsDirectory(path string) bool {
	info, err := a.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (a *aferoFS) ReadDir(path string) []string {
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (a *aferoFS) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, &os.PathError{Op: "readfile", Path: path, Err: err}
	}
	return data, nil
}

var _ FS = (*aferoFS)(nil)
