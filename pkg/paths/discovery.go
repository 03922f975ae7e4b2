package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/entry"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/filesystem"
	"github.com/arthur-debert/deskfile/pkg/logging"
	"github.com/rs/zerolog"
)

// Discovered is one desktop file found on the search path
type Discovered struct {
	// Path is the file's absolute location
	Path string

	// ID is the Desktop File ID relative to the directory the file was
	// found under
	ID string
}

// Discover walks the given application directories for .desktop files.
// Directories are scanned in order and files shadow by Desktop File ID:
// the first occurrence of an ID wins. Unreadable directories are
// skipped, not fatal.
func Discover(fsys filesystem.FS, dirs []string) []Discovered {
	logger := logging.GetLogger("paths.discover")

	var found []Discovered
	seen := make(map[string]bool)

	for _, dir := range dirs {
		walkDir(fsys, dir, dir, seen, &found, logger)
	}
	return found
}

func walkDir(fsys filesystem.FS, base, dir string, seen map[string]bool, found *[]Discovered, logger zerolog.Logger) {
	dirents, err := fsys.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return
	}

	for _, dirent := range dirents {
		path := filepath.Join(dir, dirent.Name())
		if dirent.IsDir() {
			walkDir(fsys, base, path, seen, found, logger)
			continue
		}
		if !strings.HasSuffix(dirent.Name(), ".desktop") {
			continue
		}

		id := entry.ID(path, []string{base})
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		*found = append(*found, Discovered{Path: path, ID: id})
	}
}

// LoadEntry reads and parses one desktop file
func LoadEntry(fsys filesystem.FS, path string, opts document.Options) (*entry.File, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return entry.Parse(string(data), path, opts)
}

// FindByID searches the application directories for the entry with the
// given Desktop File ID
func FindByID(fsys filesystem.FS, dirs []string, id string) (Discovered, bool) {
	for _, d := range Discover(fsys, dirs) {
		if d.ID == id {
			return d, true
		}
	}
	return Discovered{}, false
}
