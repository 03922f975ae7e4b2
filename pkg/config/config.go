// Package config handles configuration management for deskfile. It
// layers the embedded defaults, the user's TOML file, and a small set
// of environment variables, in that order.
package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/logging"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Environment variable names recognized on top of the config file
const (
	// EnvTerminal names the terminal emulator command, whitespace
	// separated, e.g. "alacritty -e"
	EnvTerminal = "DESKFILE_TERMINAL"
)

// Config is deskfile's complete configuration
type Config struct {
	Launch   LaunchConfig   `toml:"launch"`
	Paths    PathsConfig    `toml:"paths"`
	Terminal TerminalConfig `toml:"terminal"`
}

// LaunchConfig carries the default launch permissions
type LaunchConfig struct {
	AllowExec              bool `toml:"allow_exec"`
	AllowFollowLink        bool `toml:"allow_follow_link"`
	AllowMultipleInstances bool `toml:"allow_multiple_instances"`
}

// PathsConfig extends the desktop entry search path
type PathsConfig struct {
	ExtraApplicationDirs []string `toml:"extra_application_dirs"`
	MenuFiles            []string `toml:"menu_files"`
}

// TerminalConfig selects the terminal emulator for Terminal=true
// entries. An empty Command means autodetect.
type TerminalConfig struct {
	Command []string `toml:"command"`
}

// Default returns the embedded default configuration
func Default() *Config {
	var cfg Config
	// embedded defaults are compiled in and always parse
	_ = toml.Unmarshal(defaultConfig, &cfg)
	return &cfg
}

// Load builds the effective configuration. A missing user file is not
// an error; a malformed one is.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Debug().Str("path", path).Msg("no user config file, using defaults")
	case err != nil:
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read config file %s", path).
			WithDetail("path", path)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "malformed config file %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded user config file")
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if term := os.Getenv(EnvTerminal); term != "" {
		cfg.Terminal.Command = strings.Fields(term)
	}
}
