package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/deskfile/pkg/config"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.True(t, cfg.Launch.AllowExec)
	assert.True(t, cfg.Launch.AllowFollowLink)
	assert.True(t, cfg.Launch.AllowMultipleInstances)
	assert.Empty(t, cfg.Paths.ExtraApplicationDirs)
	assert.Empty(t, cfg.Terminal.Command)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "deskfile.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskfile.toml")
	content := `
[launch]
allow_exec = false

[paths]
extra_application_dirs = ["/opt/apps"]

[terminal]
command = ["kitty"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Launch.AllowExec)
	// keys absent from the user file keep their defaults
	assert.True(t, cfg.Launch.AllowFollowLink)
	assert.True(t, cfg.Launch.AllowMultipleInstances)
	assert.Equal(t, []string{"/opt/apps"}, cfg.Paths.ExtraApplicationDirs)
	assert.Equal(t, []string{"kitty"}, cfg.Terminal.Command)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskfile.toml")
	require.NoError(t, os.WriteFile(path, []byte("[launch\nallow_exec ="), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLoad_TerminalEnvOverride(t *testing.T) {
	t.Setenv(config.EnvTerminal, "foot -e")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "deskfile.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foot", "-e"}, cfg.Terminal.Command)
}
