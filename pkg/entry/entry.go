// Package entry provides the typed, semantic view over a parsed desktop
// entry document: type inference, scalar and boolean accessors, localized
// lookup, semicolon lists, actions, and desktop file IDs. The underlying
// document stays authoritative; this package only layers meaning (and the
// value-escape layer) on top of it.
package entry

import (
	"strings"

	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/arthur-debert/deskfile/pkg/locale"
)

// Type is the derived kind of a desktop entry
type Type int

const (
	TypeUnknown Type = iota
	TypeApplication
	TypeLink
	TypeDirectory
)

// String returns the Type key value for t, or "Unknown"
func (t Type) String() string {
	switch t {
	case TypeApplication:
		return "Application"
	case TypeLink:
		return "Link"
	case TypeDirectory:
		return "Directory"
	}
	return "Unknown"
}

// Well-known keys of the Desktop Entry group
const (
	KeyType            = "Type"
	KeyName            = "Name"
	KeyGenericName     = "GenericName"
	KeyComment         = "Comment"
	KeyIcon            = "Icon"
	KeyExec            = "Exec"
	KeyURL             = "URL"
	KeyTryExec         = "TryExec"
	KeyPath            = "Path"
	KeyTerminal        = "Terminal"
	KeyNoDisplay       = "NoDisplay"
	KeyHidden          = "Hidden"
	KeyDBusActivatable = "DBusActivatable"
	KeyStartupNotify   = "StartupNotify"
	KeyCategories      = "Categories"
	KeyKeywords        = "Keywords"
	KeyMimeType        = "MimeType"
	KeyActions         = "Actions"
	KeyOnlyShowIn      = "OnlyShowIn"
	KeyNotShowIn       = "NotShowIn"
)

// File is a desktop entry: a document plus the path it came from. The
// path participates in type inference (".directory" files) and in %k
// field-code expansion; it may be empty for in-memory entries.
type File struct {
	doc  *document.Document
	path string
}

// Parse reads desktop entry text. Path is the file's origin and may be
// empty; opts is the document-level parse policy.
func Parse(text, path string, opts document.Options) (*File, error) {
	doc, err := document.Parse(text, opts)
	if err != nil {
		return nil, err
	}
	return &File{doc: doc, path: path}, nil
}

// New creates an empty entry with a ready "Desktop Entry" group
func New() *File {
	return &File{doc: document.New()}
}

// FromDocument wraps an existing document
func FromDocument(doc *document.Document, path string) *File {
	return &File{doc: doc, path: path}
}

// Document exposes the underlying document for raw access
func (f *File) Document() *document.Document { return f.doc }

// FileName returns the path this entry was read from, if any
func (f *File) FileName() string { return f.path }

// DesktopEntry returns the "Desktop Entry" group, or nil if the document
// has none. Accessors forward to it explicitly.
func (f *File) DesktopEntry() *document.Group {
	if g, ok := f.doc.Group(document.DesktopEntryGroupName); ok {
		return g
	}
	return nil
}

// Type derives the entry's kind from the Type key. An absent or
// unrecognized value still yields Directory when the file name ends in
// ".directory".
func (f *File) Type() Type {
	switch f.Value(KeyType) {
	case "Application":
		return TypeApplication
	case "Link":
		return TypeLink
	case "Directory":
		return TypeDirectory
	}
	if strings.HasSuffix(f.path, ".directory") {
		return TypeDirectory
	}
	return TypeUnknown
}

// Value reads a key from the Desktop Entry group with the general
// value-escape layer resolved. Absent keys read as empty.
func (f *File) Value(key string) string {
	g := f.DesktopEntry()
	if g == nil {
		return ""
	}
	return document.UnescapeValue(g.GetOrDefault(key, ""))
}

// SetValue writes a key to the Desktop Entry group, applying the general
// value-escape layer
func (f *File) SetValue(key, value string) error {
	g := f.DesktopEntry()
	if g == nil {
		return errors.Newf(errors.ErrMissingRequiredGroup, "group %q not found", document.DesktopEntryGroupName)
	}
	return g.Set(key, document.EscapeValue(value))
}

// LocalizedValue resolves key under the locale fallback rules, returning
// def when no candidate exists. Callers must substitute their current
// locale for an empty loc themselves; this package never consults the
// environment.
func (f *File) LocalizedValue(key, loc, def string) string {
	g := f.DesktopEntry()
	if g == nil {
		return def
	}
	for _, candidate := range locale.CandidateKeys(key, loc) {
		if v, ok := g.Get(candidate); ok {
			return document.UnescapeValue(v)
		}
	}
	return def
}

// SetLocalizedValue writes key under a locale suffix with the encoding
// stripped
func (f *File) SetLocalizedValue(key, loc, value string) error {
	g := f.DesktopEntry()
	if g == nil {
		return errors.Newf(errors.ErrMissingRequiredGroup, "group %q not found", document.DesktopEntryGroupName)
	}
	return g.Set(locale.LocalizedKey(key, loc), document.EscapeValue(value))
}

// Scalar accessors

func (f *File) Name() string        { return f.Value(KeyName) }
func (f *File) GenericName() string { return f.Value(KeyGenericName) }
func (f *File) Comment() string     { return f.Value(KeyComment) }
func (f *File) Icon() string        { return f.Value(KeyIcon) }
func (f *File) Exec() string        { return f.Value(KeyExec) }
func (f *File) URL() string         { return f.Value(KeyURL) }
func (f *File) TryExec() string     { return f.Value(KeyTryExec) }

// WorkingDirectory reads the Path key: the working directory a launched
// process should run in
func (f *File) WorkingDirectory() string { return f.Value(KeyPath) }

// LocalizedName resolves Name under the locale fallback rules
func (f *File) LocalizedName(loc string) string {
	return f.LocalizedValue(KeyName, loc, f.Name())
}

// LocalizedGenericName resolves GenericName under the locale fallback rules
func (f *File) LocalizedGenericName(loc string) string {
	return f.LocalizedValue(KeyGenericName, loc, f.GenericName())
}

// LocalizedComment resolves Comment under the locale fallback rules
func (f *File) LocalizedComment(loc string) string {
	return f.LocalizedValue(KeyComment, loc, f.Comment())
}

func (f *File) SetName(v string) error { return f.SetValue(KeyName, v) }
func (f *File) SetExec(v string) error { return f.SetValue(KeyExec, v) }
func (f *File) SetIcon(v string) error { return f.SetValue(KeyIcon, v) }
func (f *File) SetURL(v string) error  { return f.SetValue(KeyURL, v) }
func (f *File) SetType(t Type) error   { return f.SetValue(KeyType, t.String()) }

// SetWorkingDirectory writes the Path key. Values that the escape layer
// would rewrite (embedded control characters) are rejected: the path
// would no longer name what the caller passed.
func (f *File) SetWorkingDirectory(v string) error {
	if strings.ContainsAny(v, "\n\r\t") {
		return errors.Newf(errors.ErrInvalidPathValue, "path %q contains control characters", v).
			WithDetail("group", document.DesktopEntryGroupName).
			WithDetail("key", KeyPath).
			WithDetail("value", v)
	}
	return f.SetValue(KeyPath, v)
}

// Boolean accessors. IsTrue maps "true"/"1", IsFalse maps "false"/"0";
// any other string is neither.

func (f *File) Terminal() bool        { return IsTrue(f.Value(KeyTerminal)) }
func (f *File) NoDisplay() bool       { return IsTrue(f.Value(KeyNoDisplay)) }
func (f *File) Hidden() bool          { return IsTrue(f.Value(KeyHidden)) }
func (f *File) DBusActivatable() bool { return IsTrue(f.Value(KeyDBusActivatable)) }
func (f *File) StartupNotify() bool   { return IsTrue(f.Value(KeyStartupNotify)) }

func (f *File) SetTerminal(v bool) error { return f.SetValue(KeyTerminal, formatBool(v)) }
func (f *File) SetHidden(v bool) error   { return f.SetValue(KeyHidden, formatBool(v)) }

// IsTrue reports whether a raw value means true
func IsTrue(v string) bool {
	return v == "true" || v == "1"
}

// IsFalse reports whether a raw value means false
func IsFalse(v string) bool {
	return v == "false" || v == "0"
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// List accessors

func (f *File) Categories() []string { return SplitValues(f.Value(KeyCategories)) }
func (f *File) Keywords() []string   { return SplitValues(f.Value(KeyKeywords)) }
func (f *File) MimeTypes() []string  { return SplitValues(f.Value(KeyMimeType)) }
func (f *File) OnlyShowIn() []string { return SplitValues(f.Value(KeyOnlyShowIn)) }
func (f *File) NotShowIn() []string  { return SplitValues(f.Value(KeyNotShowIn)) }

func (f *File) SetCategories(values []string) error {
	return f.SetValue(KeyCategories, JoinValues(values))
}

// ShowIn decides whether the entry should be shown in the given desktop
// environment: NotShowIn wins, then OnlyShowIn restricts when non-empty.
func (f *File) ShowIn(env string) bool {
	for _, v := range f.NotShowIn() {
		if v == env {
			return false
		}
	}
	only := f.OnlyShowIn()
	if len(only) == 0 {
		return true
	}
	for _, v := range only {
		if v == env {
			return true
		}
	}
	return false
}
