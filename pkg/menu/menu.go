// Package menu reads the directory declarations of freedesktop menu
// files (.menu, an XML format). Only the pieces that extend the desktop
// entry search path are extracted; menu layout and matching rules are
// out of scope.
package menu

import (
	"strings"

	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/filesystem"
	"github.com/beevik/etree"
)

// Menu holds the search-path contributions of one menu file
type Menu struct {
	// AppDirs are additional directories holding .desktop files
	AppDirs []string

	// DirectoryDirs are additional directories holding .directory files
	DirectoryDirs []string
}

// Load reads and parses a menu file
func Load(fsys filesystem.FS, path string) (*Menu, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return Parse(data)
}

// Parse extracts directory declarations from menu XML. Nested <Menu>
// elements contribute too; duplicates are dropped, first occurrence
// winning.
func Parse(data []byte) (*Menu, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "menu file is not valid XML")
	}

	m := &Menu{}
	m.AppDirs = collect(doc, "//AppDir")
	m.DirectoryDirs = collect(doc, "//DirectoryDir")
	return m, nil
}

func collect(doc *etree.Document, xpath string) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, el := range doc.FindElements(xpath) {
		dir := strings.TrimSpace(el.Text())
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
