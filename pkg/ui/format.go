// Package ui handles output format selection for the deskfile CLI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks term or text based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatYAML renders machine-readable YAML output
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat resolves FormatAuto against the environment and terminal
// capabilities; explicit formats pass through unchanged.
func DetectFormat(f Format, output *os.File) Format {
	if f != FormatAuto {
		return f
	}

	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected output gets plain text
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
