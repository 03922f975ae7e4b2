package execline

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/errors"
)

// Context carries the runtime values substituted for field codes
type Context struct {
	// URLs are the launch targets, in order. Depending on the template
	// they are passed through verbatim (%u, %U) or as plain file paths
	// (%F; file:// URIs are normalized).
	URLs []string

	// Icon is the entry's icon name, consumed by %i
	Icon string

	// DisplayName is the entry's (localized) name, consumed by %c
	DisplayName string

	// FileName is the location of the desktop file itself, consumed by %k
	FileName string
}

// Expand substitutes %-field codes in an unquoted token list, producing
// the concrete argument vector. Codes may be embedded inside a larger
// token with the surrounding literal text preserved, except for the
// plural codes %F and %U and the icon code %i, which must each stand
// alone as their own token.
func Expand(tokens []string, ctx Context) ([]string, error) {
	args := make([]string, 0, len(tokens))

	for _, token := range tokens {
		switch token {
		case "%F":
			for _, u := range ctx.URLs {
				args = append(args, uriToPath(u))
			}
			continue
		case "%U":
			args = append(args, ctx.URLs...)
			continue
		case "%i":
			if ctx.Icon != "" {
				args = append(args, "--icon", ctx.Icon)
			}
			continue
		}

		expanded, keep, err := expandToken(token, ctx)
		if err != nil {
			return nil, err
		}
		if keep {
			args = append(args, expanded)
		}
	}

	return args, nil
}

// expandToken substitutes the inline codes of one token. keep is false
// when the whole token must be dropped: deprecated codes, or a singular
// url code with no url to substitute.
func expandToken(token string, ctx Context) (expanded string, keep bool, err error) {
	if !strings.ContainsRune(token, '%') {
		return token, true, nil
	}

	var b strings.Builder
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(token) {
			return "", false, errors.New(errors.ErrUnknownFieldCode,
				"dangling % at end of exec argument").WithDetail("token", token)
		}
		i++
		switch code := token[i]; code {
		case '%':
			b.WriteByte('%')
		case 'f', 'u':
			if len(ctx.URLs) == 0 {
				return "", false, nil
			}
			b.WriteString(ctx.URLs[0])
		case 'c':
			b.WriteString(ctx.DisplayName)
		case 'k':
			b.WriteString(ctx.FileName)
		case 'd', 'D', 'n', 'N', 'm', 'v':
			// deprecated codes drop the whole token
			return "", false, nil
		case 'F', 'U', 'i':
			return "", false, errors.Newf(errors.ErrUnknownFieldCode,
				"field code %%%c must be its own argument", code).WithDetail("token", token)
		default:
			return "", false, errors.Newf(errors.ErrUnknownFieldCode,
				"unknown field code %%%c", code).WithDetail("token", token)
		}
	}

	return b.String(), true, nil
}

// ParamSupport records which url-consuming field codes a template uses
type ParamSupport struct {
	Singular bool // %f or %u anywhere
	Plural   bool // %F or %U anywhere
}

// ScanParams inspects an unquoted token list for url field codes,
// counting embedded occurrences and ignoring %%-escaped percents
func ScanParams(tokens []string) ParamSupport {
	var p ParamSupport
	for _, token := range tokens {
		for i := 0; i+1 < len(token); i++ {
			if token[i] != '%' {
				continue
			}
			switch token[i+1] {
			case 'f', 'u':
				p.Singular = true
			case 'F', 'U':
				p.Plural = true
			}
			i++ // also skips the doubled percent of %%
		}
	}
	return p
}

// NeedsMultipleInstances reports whether honoring multiple urls requires
// one process per url: true iff the template uses singular codes only
func (p ParamSupport) NeedsMultipleInstances() bool {
	return p.Singular && !p.Plural
}

// uriToPath turns a file:// URI into a plain filesystem path. Anything
// else is returned unchanged.
func uriToPath(s string) string {
	if !strings.HasPrefix(s, "file:") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return s
	}
	return u.Path
}
