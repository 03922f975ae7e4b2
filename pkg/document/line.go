package document

import (
	"strings"

	"github.com/arthur-debert/deskfile/pkg/errors"
)

// LineKind discriminates the variants of a stored line
type LineKind int

const (
	// LineComment is a blank line or a line starting with '#'
	LineComment LineKind = iota

	// LineKeyValue is a key=value entry
	LineKeyValue

	// LineRemoved is a tombstone: a removed key-value entry that keeps
	// its position so serialization preserves the original line order.
	// A later Set on the same key revives it in place.
	LineRemoved
)

// Line is one stored line of a group or of the document's leading block.
// The raw text is kept verbatim for round-trip serialization and is only
// regenerated when the line is mutated.
type Line struct {
	kind  LineKind
	key   string
	value string
	raw   string
	eol   string
}

// Kind returns the line's variant
func (l Line) Kind() LineKind { return l.kind }

// Key returns the key of a key-value line (retained on tombstones)
func (l Line) Key() string { return l.key }

// Value returns the raw stored value of a key-value line
func (l Line) Value() string { return l.value }

// Raw returns the line's text without its terminator
func (l Line) Raw() string { return l.raw }

// classified is the parser-facing view of one source line
type classified struct {
	kind      classKind
	groupName string
	key       string
	value     string
}

type classKind int

const (
	classComment classKind = iota
	classGroupHeader
	classKeyValue
	classMalformed
)

// classifyLine decides what a single raw source line is. The terminator
// must already be stripped.
func classifyLine(raw string) classified {
	if strings.TrimSpace(raw) == "" || strings.HasPrefix(raw, "#") {
		return classified{kind: classComment}
	}

	if strings.HasPrefix(raw, "[") {
		trimmed := strings.TrimRight(raw, " \t")
		if strings.HasSuffix(trimmed, "]") {
			return classified{
				kind:      classGroupHeader,
				groupName: trimmed[1 : len(trimmed)-1],
			}
		}
		return classified{kind: classMalformed}
	}

	if idx := strings.IndexByte(raw, '='); idx >= 0 {
		// space around the '=' separator is not part of key or value
		key := strings.TrimSpace(raw[:idx])
		value := strings.TrimLeft(raw[idx+1:], " \t")
		return classified{kind: classKeyValue, key: key, value: value}
	}

	return classified{kind: classMalformed}
}

// ValidateKey checks that the non-locale-suffixed portion of a key uses
// only the permitted charset [A-Za-z0-9-].
func ValidateKey(key string) error {
	base := key
	if strings.HasSuffix(key, "]") {
		if idx := strings.IndexByte(key, '['); idx >= 0 {
			base = key[:idx]
		}
	}
	if base == "" {
		return errors.New(errors.ErrInvalidKey, "key is empty").WithDetail("key", key)
	}
	for _, r := range base {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return errors.Newf(errors.ErrInvalidKey, "key %q contains invalid character %q", key, r).
				WithDetail("key", key)
		}
	}
	return nil
}

// EscapeValue applies the general value-escape layer: backslash, newline,
// carriage return, and tab become two-character sequences. This layer is
// independent of semicolon-list escaping and of Exec quoting.
func EscapeValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeValue resolves the general value-escape layer. Unrecognized
// escape sequences are kept verbatim, backslash included.
func UnescapeValue(value string) string {
	if !strings.ContainsRune(value, '\\') {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' || i+1 >= len(value) {
			b.WriteByte(c)
			continue
		}
		switch value[i+1] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 's':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}
