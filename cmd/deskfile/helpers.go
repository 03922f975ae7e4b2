package main

import (
	"os"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/config"
	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/entry"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/filesystem"
	"github.com/arthur-debert/deskfile/pkg/logging"
	"github.com/arthur-debert/deskfile/pkg/menu"
	"github.com/arthur-debert/deskfile/pkg/paths"
)

// appEnv bundles the collaborators every command needs
type appEnv struct {
	fs  filesystem.FS
	cfg *config.Config
	pth paths.Paths
}

func newAppEnv() (*appEnv, error) {
	logger := logging.GetLogger("cli")
	fsys := filesystem.NewOS()

	cfg, err := config.Load(paths.New(nil).ConfigFilePath())
	if err != nil {
		return nil, err
	}

	extra := append([]string{}, cfg.Paths.ExtraApplicationDirs...)
	for _, menuFile := range cfg.Paths.MenuFiles {
		m, err := menu.Load(fsys, menuFile)
		if err != nil {
			logger.Warn().Err(err).Str("file", menuFile).Msg("Skipping menu file")
			continue
		}
		extra = append(extra, m.AppDirs...)
	}

	return &appEnv{fs: fsys, cfg: cfg, pth: paths.New(extra)}, nil
}

// resolveEntry loads an entry from a path-looking argument directly,
// otherwise treats the argument as a Desktop File ID and searches the
// applications path for it.
func (e *appEnv) resolveEntry(arg string) (*entry.File, error) {
	if strings.ContainsRune(arg, '/') || fileExists(e.fs, arg) {
		return paths.LoadEntry(e.fs, arg, document.DefaultOptions())
	}

	id := arg
	if !strings.HasSuffix(id, ".desktop") {
		id += ".desktop"
	}
	if d, ok := paths.FindByID(e.fs, e.pth.ApplicationDirs(), id); ok {
		return paths.LoadEntry(e.fs, d.Path, document.DefaultOptions())
	}

	return nil, errors.Newf(errors.ErrFileNotFound, MsgErrNotFound, arg)
}

func fileExists(fsys filesystem.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// environmentLocale returns the locale string the POSIX way: LC_ALL
// beats LC_MESSAGES beats LANG.
func environmentLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
