// Package locale parses POSIX-style locale strings and computes the
// fallback order used to resolve localized desktop entry keys. It never
// reads the environment: callers pass the locale in explicitly, which
// keeps resolution deterministic and testable.
package locale

import "strings"

// Locale is the decomposition of a locale string such as
// "ru_RU.UTF-8@petr1708". The encoding is retained for completeness but
// is always dropped when building lookup keys.
type Locale struct {
	Lang     string
	Country  string
	Encoding string
	Modifier string
}

// Parse decomposes a locale string right to left: optional @modifier,
// then optional .encoding, then optional _country; the remainder is the
// language.
func Parse(s string) Locale {
	var l Locale

	if idx := strings.LastIndexByte(s, '@'); idx >= 0 {
		l.Modifier = s[idx+1:]
		s = s[:idx]
	}
	if idx := strings.LastIndexByte(s, '.'); idx >= 0 {
		l.Encoding = s[idx+1:]
		s = s[:idx]
	}
	if idx := strings.LastIndexByte(s, '_'); idx >= 0 {
		l.Country = s[idx+1:]
		s = s[:idx]
	}
	l.Lang = s
	return l
}

// String reassembles the locale without its encoding, the form used in
// localized key suffixes
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.Lang)
	if l.Country != "" {
		b.WriteByte('_')
		b.WriteString(l.Country)
	}
	if l.Modifier != "" {
		b.WriteByte('@')
		b.WriteString(l.Modifier)
	}
	return b.String()
}

// CandidateKeys returns the localized key names to probe for the given
// base key, best match first, ending with the unlocalized key itself.
// Encodings never appear in candidates.
func CandidateKeys(key, locale string) []string {
	l := Parse(locale)
	if l.Lang == "" {
		return []string{key}
	}

	candidates := make([]string, 0, 5)
	if l.Country != "" && l.Modifier != "" {
		candidates = append(candidates, key+"["+l.Lang+"_"+l.Country+"@"+l.Modifier+"]")
	}
	if l.Country != "" {
		candidates = append(candidates, key+"["+l.Lang+"_"+l.Country+"]")
	}
	if l.Modifier != "" {
		candidates = append(candidates, key+"["+l.Lang+"@"+l.Modifier+"]")
	}
	candidates = append(candidates, key+"["+l.Lang+"]", key)
	return candidates
}

// LocalizedKey builds the key name for writing a value under a locale,
// with the encoding stripped. An empty locale yields the key unchanged.
func LocalizedKey(key, locale string) string {
	l := Parse(locale)
	if l.Lang == "" {
		return key
	}
	return key + "[" + l.String() + "]"
}

// SplitKey splits a possibly localized key into its base key and locale
// suffix. Keys without a suffix return an empty locale.
func SplitKey(key string) (base, locale string) {
	if !strings.HasSuffix(key, "]") {
		return key, ""
	}
	idx := strings.IndexByte(key, '[')
	if idx < 0 {
		return key, ""
	}
	return key[:idx], key[idx+1 : len(key)-1]
}
