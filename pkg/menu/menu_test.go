package menu_test

import (
	"testing"

	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/filesystem"
	"github.com/arthur-debert/deskfile/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AppDirs(t *testing.T) {
	data := `<!DOCTYPE Menu PUBLIC "-//freedesktop//DTD Menu 1.0//EN"
 "http://www.freedesktop.org/standards/menu-spec/1.0/menu.dtd">
<Menu>
  <Name>Applications</Name>
  <AppDir>/usr/share/applications</AppDir>
  <DirectoryDir>/usr/share/desktop-directories</DirectoryDir>
  <Menu>
    <Name>Games</Name>
    <AppDir>/opt/games/applications</AppDir>
  </Menu>
</Menu>`

	m, err := menu.Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/usr/share/applications",
		"/opt/games/applications",
	}, m.AppDirs)
	assert.Equal(t, []string{"/usr/share/desktop-directories"}, m.DirectoryDirs)
}

func TestParse_DeduplicatesAndTrims(t *testing.T) {
	data := `<Menu>
  <AppDir>  /usr/share/applications  </AppDir>
  <AppDir>/usr/share/applications</AppDir>
  <AppDir></AppDir>
</Menu>`

	m, err := menu.Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/share/applications"}, m.AppDirs)
}

func TestParse_NoDirs(t *testing.T) {
	m, err := menu.Parse([]byte(`<Menu><Name>Empty</Name></Menu>`))
	require.NoError(t, err)
	assert.Empty(t, m.AppDirs)
	assert.Empty(t, m.DirectoryDirs)
}

func TestParse_InvalidXML(t *testing.T) {
	_, err := menu.Parse([]byte(`<Menu><AppDir>/a`))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLoad(t *testing.T) {
	fs := filesystem.NewMemory(map[string]string{
		"/etc/xdg/menus/applications.menu": `<Menu><AppDir>/extra/apps</AppDir></Menu>`,
	})

	m, err := menu.Load(fs, "/etc/xdg/menus/applications.menu")
	require.NoError(t, err)
	assert.Equal(t, []string{"/extra/apps"}, m.AppDirs)

	_, err = menu.Load(fs, "/etc/xdg/menus/missing.menu")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
