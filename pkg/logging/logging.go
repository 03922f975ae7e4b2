// Package logging configures zerolog for deskfile. The parsing core never
// logs; discovery, launching, and the CLI obtain component loggers here.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the log file under the XDG state directory
const LogFileName = "deskfile.log"

// SetupLogger configures the global logger based on verbosity level.
// Output goes to the console and, when possible, to a state-dir log file.
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{consoleWriter}

	logFile := LogFilePath()
	fileHandle, err := openLogFile(logFile)
	if err == nil {
		writers = append(writers, fileHandle)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to open log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns the log file location under the XDG state directory
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, "deskfile", LogFileName)
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
