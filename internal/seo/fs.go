package seo

import (
	"os"
	"path/filepath"
)

// FS is the file capability the writer needs. Names are slash-separated and
// relative to the project root.
type FS interface {
	WriteFile(name string, data []byte) error
	Remove(name string) error
	// Exists reports whether name can be stat'ed. It never fails.
	Exists(name string) bool
}

// DirFS operates on the real filesystem under root. Parent directories are
// never created. Errors are the *os.PathError values from the os package.
type DirFS struct {
	root string
}

func NewDirFS(root string) DirFS {
	return DirFS{root: root}
}

func (d DirFS) Root() string {
	return d.root
}

func (d DirFS) path(name string) string {
	return filepath.Join(d.root, filepath.FromSlash(name))
}

func (d DirFS) WriteFile(name string, data []byte) error {
	return os.WriteFile(d.path(name), data, 0o644)
}

func (d DirFS) Remove(name string) error {
	return os.Remove(d.path(name))
}

// Exists treats every stat failure as absence, so a marker under a missing
// or non-directory parent counts as already removed.
func (d DirFS) Exists(name string) bool {
	_, err := os.Stat(d.path(name))
	return err == nil
}
