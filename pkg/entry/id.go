package entry

import (
	"path/filepath"
	"strings"
)

// ID derives the Desktop File ID for a file located under one of the
// given base "applications" directories: the path relative to the first
// matching base, with separators replaced by '-'. A file under none of
// the bases has no ID.
func ID(path string, baseDirs []string) string {
	path = filepath.Clean(path)

	for _, base := range baseDirs {
		base = filepath.Clean(base)
		rel, err := filepath.Rel(base, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
			continue
		}
		return strings.ReplaceAll(rel, string(filepath.Separator), "-")
	}
	return ""
}

// DesktopID derives the entry's Desktop File ID from its origin path
func (f *File) DesktopID(baseDirs []string) string {
	if f.path == "" {
		return ""
	}
	return ID(f.path, baseDirs)
}
