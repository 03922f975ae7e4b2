package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing/fstest"
)

// memFS adapts an in-memory map filesystem to FS, accepting the
// absolute paths the rest of the code works with
type memFS struct {
	inner fstest.MapFS
}

// NewMemory creates an in-memory FS from absolute paths to contents,
// for tests
func NewMemory(files map[string]string) FS {
	inner := make(fstest.MapFS, len(files))
	for name, content := range files {
		inner[trimRoot(name)] = &fstest.MapFile{Data: []byte(content), Mode: 0644}
	}
	return &memFS{inner: inner}
}

func trimRoot(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(name)), "/")
}

func (m *memFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(m.inner, trimRoot(name))
}

func (m *memFS) ReadFile(name string) ([]byte, error) {
	return m.inner.ReadFile(trimRoot(name))
}

func (m *memFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return m.inner.ReadDir(trimRoot(name))
}
