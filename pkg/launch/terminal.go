package launch

import (
	"os"
	"os/exec"
	"strings"
)

// knownTerminals are probed in order when no explicit terminal is
// configured. Each maps to the flag that makes it run a command.
var knownTerminals = []struct {
	name string
	flag string
}{
	{"x-terminal-emulator", "-e"},
	{"gnome-terminal", "--"},
	{"konsole", "-e"},
	{"xfce4-terminal", "-x"},
	{"alacritty", "-e"},
	{"kitty", "-e"},
	{"foot", "-e"},
	{"xterm", "-e"},
}

// DetectTerminal is the default TerminalDetector. It honors the TERMINAL
// environment variable (split on whitespace, "-e" appended when the
// variable holds a bare command) and otherwise probes a list of known
// emulators on PATH. Returns nil when nothing is found.
func DetectTerminal() []string {
	if env := os.Getenv("TERMINAL"); env != "" {
		fields := strings.Fields(env)
		if len(fields) == 1 {
			return []string{fields[0], "-e"}
		}
		return fields
	}

	for _, term := range knownTerminals {
		if path, err := exec.LookPath(term.name); err == nil {
			return []string{path, term.flag}
		}
	}
	return nil
}

// FixedTerminal builds a TerminalDetector that always returns the given
// command vector, used when the terminal comes from configuration
func FixedTerminal(cmd []string) TerminalDetector {
	return func() []string {
		return cmd
	}
}
