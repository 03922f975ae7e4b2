package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_XDGDirs(t *testing.T) {
	t.Setenv(EnvDeskfileDirs, "")

	p := New([]string{"/opt/menus/apps"})
	dirs := p.ApplicationDirs()

	require.NotEmpty(t, dirs)
	for _, dir := range dirs[:len(dirs)-1] {
		assert.Equal(t, ApplicationsDir, filepath.Base(dir), "dir %s", dir)
	}
	assert.Equal(t, "/opt/menus/apps", dirs[len(dirs)-1], "extra dirs rank last")
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv(EnvDeskfileDirs, "/first:/second::/third")

	p := New([]string{"/ignored"})
	assert.Equal(t, []string{"/first", "/second", "/third"}, p.ApplicationDirs())
}

func TestConfigFilePath(t *testing.T) {
	p := New(nil)
	assert.Equal(t, ConfigFileName, filepath.Base(p.ConfigFilePath()))
	assert.Equal(t, DeskfileDirName, filepath.Base(filepath.Dir(p.ConfigFilePath())))
}
