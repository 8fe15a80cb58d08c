package vfs

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// MemFS is an in-memory FS built from a flat map of absolute path to file
// content, the same shape esbuild's test mock filesystem uses. Directories
// are derived from the file paths rather than declared explicitly, so an
// empty directory can only exist if it is listed in dirs.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemFS builds a MemFS from a map of absolute path to textual content.
// Every ancestor directory of every file is synthesized automatically.
func NewMemFS(files map[string]string) *MemFS {
	m := &MemFS{
		files: make(map[string][]byte, len(files)),
		dirs:  make(map[string]bool),
	}
	for p, content := range files {
		m.files[clean(p)] = []byte(content)
	}
	for p := range m.files {
		dir := path.Dir(p)
		for dir != "/" && dir != "." {
			m.dirs[dir] = true
			dir = path.Dir(dir)
		}
		m.dirs["/"] = true
	}
	return m
}

// WriteFile adds or replaces a file's content and registers its ancestor
// directories. Used by the host integration to seed a project snapshot
// incrementally (e.g. from a file-watch event) rather than all at once.
func (m *MemFS) WriteFile(p string, content []byte) {
	p = clean(p)
	m.files[p] = content
	dir := path.Dir(p)
	for dir != "/" && dir != "." {
		m.dirs[dir] = true
		dir = path.Dir(dir)
	}
	m.dirs["/"] = true
}

// RemoveFile deletes a file, mirroring a file-watch delete event. It does
// not prune now-empty ancestor directories; this matches the conservative
// "directories never disappear" behavior an in-memory snapshot can afford.
func (m *MemFS) RemoveFile(p string) {
	delete(m.files, clean(p))
}

func clean(p string) string {
	if p == "" {
		return "/"
	}
	c := path.Clean(p)
	if !strings.HasPrefix(c, "/") {
		c = "/" + c
	}
	return c
}

func (m *MemFS) Exists(p string) bool {
	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	return m.dirs[p]
}

func (m *MemFS) IsDirectory(p string) bool {
	return m.dirs[clean(p)]
}

func (m *MemFS) ReadDir(p string) []string {
	p = clean(p)
	if !m.dirs[p] {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	add := func(child string) {
		if !seen[child] {
			seen[child] = true
			out = append(out, child)
		}
	}
	prefix := p
	if prefix != "/" {
		prefix += "/"
	}
	for f := range m.files {
		if rest, ok := cutPrefix(f, prefix); ok && rest != "" {
			add(firstSegment(rest))
		}
	}
	for d := range m.dirs {
		if rest, ok := cutPrefix(d, prefix); ok && rest != "" {
			add(firstSegment(rest))
		}
	}
	sort.Strings(out)
	return out
}

func (m *MemFS) ReadFile(p string) ([]byte, error) {
	p = clean(p)
	content, ok := m.files[p]
	if !ok {
		return nil, fmt.Errorf("vfs: no such file %s", p)
	}
	return content, nil
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return s[len(prefix):], true
}

func firstSegment(rest string) string {
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

var _ FS = (*MemFS)(nil)
