// Package paths provides centralized path handling for deskfile. It
// implements XDG Base Directory compliance for locating desktop entry
// files and deskfile's own configuration.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDeskfileDirs overrides the applications search path entirely,
	// colon-separated
	EnvDeskfileDirs = "DESKFILE_DIRS"
)

// Default directory and file names
const (
	// ApplicationsDir is the subdirectory of each XDG data directory
	// that holds desktop entry files
	ApplicationsDir = "applications"

	// DeskfileDirName is the directory name for deskfile-specific files
	DeskfileDirName = "deskfile"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "deskfile.toml"
)

// Paths resolves the directories deskfile works with
type Paths interface {
	// ApplicationDirs returns the applications search path in priority
	// order: earlier directories shadow later ones by Desktop File ID
	ApplicationDirs() []string

	// ConfigFilePath returns the location of deskfile's own config file
	ConfigFilePath() string
}

type paths struct {
	appDirs    []string
	configFile string
}

// New resolves the search path from the XDG base directories, the
// DESKFILE_DIRS override, and any extra directories (typically from
// configuration or menu files), which rank after the XDG ones.
func New(extraDirs []string) Paths {
	p := &paths{
		configFile: filepath.Join(xdg.ConfigHome, DeskfileDirName, ConfigFileName),
	}

	if override := os.Getenv(EnvDeskfileDirs); override != "" {
		for _, dir := range strings.Split(override, ":") {
			if dir != "" {
				p.appDirs = append(p.appDirs, dir)
			}
		}
		return p
	}

	p.appDirs = append(p.appDirs, filepath.Join(xdg.DataHome, ApplicationsDir))
	for _, dataDir := range xdg.DataDirs {
		p.appDirs = append(p.appDirs, filepath.Join(dataDir, ApplicationsDir))
	}
	p.appDirs = append(p.appDirs, extraDirs...)

	return p
}

func (p *paths) ApplicationDirs() []string {
	return p.appDirs
}

func (p *paths) ConfigFilePath() string {
	return p.configFile
}
