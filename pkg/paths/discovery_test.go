package paths

import (
	"testing"

	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalEntry = "[Desktop Entry]\nType=Application\nName=App\nExec=app\n"

func testFS() filesystem.FS {
	return filesystem.NewMemory(map[string]string{
		"/home/user/.local/share/applications/editor.desktop":  minimalEntry,
		"/usr/share/applications/editor.desktop":               "[Desktop Entry]\nType=Application\nName=Shadowed\n",
		"/usr/share/applications/browser.desktop":              minimalEntry,
		"/usr/share/applications/kde/konsole.desktop":          minimalEntry,
		"/usr/share/applications/README":                       "not a desktop file",
		"/usr/share/applications/broken.desktop.bak":           minimalEntry,
	})
}

func searchDirs() []string {
	return []string{
		"/home/user/.local/share/applications",
		"/usr/share/applications",
	}
}

func TestDiscover(t *testing.T) {
	found := Discover(testFS(), searchDirs())

	byID := make(map[string]string, len(found))
	for _, d := range found {
		byID[d.ID] = d.Path
	}

	assert.Equal(t, "/home/user/.local/share/applications/editor.desktop", byID["editor.desktop"],
		"earlier directory shadows later one")
	assert.Equal(t, "/usr/share/applications/browser.desktop", byID["browser.desktop"])
	assert.Equal(t, "/usr/share/applications/kde/konsole.desktop", byID["kde-konsole.desktop"],
		"nested entries get hyphenated IDs")

	assert.NotContains(t, byID, "README")
	assert.NotContains(t, byID, "broken.desktop.bak")
	assert.Len(t, found, 3)
}

func TestDiscover_MissingDirsAreSkipped(t *testing.T) {
	found := Discover(testFS(), []string{"/does/not/exist", "/usr/share/applications"})
	assert.NotEmpty(t, found)
}

func TestLoadEntry(t *testing.T) {
	fsys := testFS()

	f, err := LoadEntry(fsys, "/usr/share/applications/browser.desktop", document.StrictOptions())
	require.NoError(t, err)
	assert.Equal(t, "App", f.Name())
	assert.Equal(t, "/usr/share/applications/browser.desktop", f.FileName())

	_, err = LoadEntry(fsys, "/usr/share/applications/nope.desktop", document.StrictOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestFindByID(t *testing.T) {
	d, ok := FindByID(testFS(), searchDirs(), "kde-konsole.desktop")
	require.True(t, ok)
	assert.Equal(t, "/usr/share/applications/kde/konsole.desktop", d.Path)

	_, ok = FindByID(testFS(), searchDirs(), "missing.desktop")
	assert.False(t, ok)
}
