// Package vfs defines the virtual filesystem contract the route resolver
// and config loaders depend on, plus two concrete backends.
package vfs

// FS is the collaborator contract every core component depends on. It
// exposes exactly four operations and nothing else: no write path, no
// stat struct, no error-returning existence check. Implementations must
// never panic; a missing path is reported as false/empty, never as a
// thrown error, except ReadFile which may return an error on absence
// (callers treat that error as "absent").
type FS interface {
	// Exists reports whether a file or directory is present at path.
	Exists(path string) bool

	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) bool

	// ReadDir returns the direct child names of path (no separators,
	// no "." or ".."). Returns an empty slice for a non-directory or
	// absent path; never panics.
	ReadDir(path string) []string

	// ReadFile returns the full contents of the file at path. Only the
	// Tailwind config loader surfaces this error to its caller; every
	// other collaborator treats a non-nil error as absence.
	ReadFile(path string) ([]byte, error)
}
