package entry

import "strings"

// SplitValues splits a semicolon-separated list value. A `\;` sequence
// is an escaped semicolon belonging to its entry; empty segments are
// dropped. This is the list layer only; the general value-escape layer
// is handled by the accessors before values get here.
func SplitValues(value string) []string {
	var values []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			values = append(values, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '\\' && i+1 < len(value) && value[i+1] == ';':
			cur.WriteByte(';')
			i++
		case c == ';':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()

	return values
}

// JoinValues assembles a semicolon-separated list value: literal
// semicolons are escaped, entries are joined with ';', and one trailing
// ';' is appended. Empty entries are skipped; an all-empty input yields
// an empty string.
func JoinValues(values []string) string {
	var b strings.Builder
	for _, v := range values {
		if v == "" {
			continue
		}
		b.WriteString(strings.ReplaceAll(v, ";", `\;`))
		b.WriteByte(';')
	}
	return b.String()
}
