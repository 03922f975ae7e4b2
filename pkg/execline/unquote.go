// Package execline implements the Exec key grammar of desktop entry
// files: shell-like quoting and unquoting of the command template, the
// %-field-code expansion, and the singular/plural parameter scan that
// drives multi-instance launching. Everything here is pure; process
// creation lives in pkg/launch.
package execline

import (
	"strings"

	"github.com/arthur-debert/deskfile/pkg/errors"
)

// reserved is the set of characters that force quoting in an Exec value.
// A backslash outside quotes escapes exactly one of these (or a
// whitespace character), a compatibility extension for generated files
// found in the wild.
const reserved = "\"'\\><~|&;$*?#()`"

func isReserved(c byte) bool {
	return strings.IndexByte(reserved, c) >= 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// Unquote tokenizes an Exec template into raw argument strings. The
// input is the Exec value after the general value-escape layer has been
// resolved; quoting and backslash rules here are a separate, later pass.
// A quote left open is fatal and aborts the whole tokenization.
func Unquote(value string) ([]string, error) {
	var args []string
	var cur strings.Builder
	started := false

	flush := func() {
		if started {
			args = append(args, cur.String())
			cur.Reset()
			started = false
		}
	}

	for i := 0; i < len(value); {
		c := value[i]
		switch {
		case isSpace(c):
			flush()
			i++

		case c == '"' || c == '\'':
			started = true
			quote := c
			i++
			closed := false
			for i < len(value) {
				ch := value[i]
				if ch == '\\' && i+1 < len(value) && (value[i+1] == quote || value[i+1] == '\\') {
					cur.WriteByte(value[i+1])
					i += 2
					continue
				}
				if ch == quote {
					closed = true
					i++
					break
				}
				cur.WriteByte(ch)
				i++
			}
			if !closed {
				return nil, errors.Newf(errors.ErrUnterminatedQuote,
					"exec value ends inside a %q quote", string(quote)).
					WithDetail("value", value)
			}

		case c == '\\':
			started = true
			if i+1 < len(value) && (isSpace(value[i+1]) || isReserved(value[i+1])) {
				cur.WriteByte(value[i+1])
				i += 2
			} else {
				cur.WriteByte('\\')
				i++
			}

		default:
			started = true
			cur.WriteByte(c)
			i++
		}
	}
	flush()

	return args, nil
}

// NeedsQuoting reports whether an argument must be quoted when building
// an Exec string. Empty arguments always need quoting.
func NeedsQuoting(arg string) bool {
	if arg == "" {
		return true
	}
	for i := 0; i < len(arg); i++ {
		if isSpace(arg[i]) || isReserved(arg[i]) {
			return true
		}
	}
	return false
}

// QuoteArg renders one argument for an Exec value, double-quoting it if
// required. Inside quotes only the quote itself and the backslash need
// escaping; Unquote treats every other in-quote backslash as literal.
func QuoteArg(arg string) string {
	if !NeedsQuoting(arg) {
		return arg
	}
	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for i := 0; i < len(arg); i++ {
		switch c := arg[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// BuildExecString is the inverse of Unquote: it joins arguments into an
// Exec template, quoting where needed
func BuildExecString(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = QuoteArg(arg)
	}
	return strings.Join(quoted, " ")
}
