// Package document implements the ini-like text model behind desktop entry
// files: parsing, in-place mutation, and round-trip serialization. A
// Document parsed with comment preservation and then serialized without
// changes reproduces its input byte-for-byte, including line terminators.
//
// The model stays deliberately dumb: values are stored raw, and the
// escape layers (general value escaping, semicolon lists, Exec quoting)
// are applied by the typed accessors in pkg/entry and pkg/execline.
package document

import (
	"iter"
	"strings"

	"github.com/arthur-debert/deskfile/pkg/errors"
)

// DesktopEntryGroupName is the conventional first group of desktop files
const DesktopEntryGroupName = "Desktop Entry"

// UnknownGroupPolicy decides what the parser does with a group whose name
// the caller does not recognize
type UnknownGroupPolicy int

const (
	// UnknownGroupKeep retains unrecognized groups (the default)
	UnknownGroupKeep UnknownGroupPolicy = iota

	// UnknownGroupSkip drops unrecognized groups and their lines
	UnknownGroupSkip

	// UnknownGroupError aborts the parse on an unrecognized group
	UnknownGroupError
)

// Options is the parser policy, passed explicitly to Parse rather than
// read from ambient state
type Options struct {
	// PreserveComments keeps blank and '#' lines in the model. It must
	// be enabled for byte-exact round trips.
	PreserveComments bool

	// RequiredFirstGroup, when non-empty, makes the parse fail unless
	// the first group has exactly this name (InvalidFirstGroup) and at
	// least one group exists (MissingRequiredGroup).
	RequiredFirstGroup string

	// UnknownGroups selects the policy for group names rejected by
	// IsKnownGroup. With a nil IsKnownGroup every group is known.
	UnknownGroups UnknownGroupPolicy
	IsKnownGroup  func(name string) bool
}

// DefaultOptions preserves comments and accepts any group layout
func DefaultOptions() Options {
	return Options{PreserveComments: true}
}

// StrictOptions additionally requires "Desktop Entry" as the first group
func StrictOptions() Options {
	return Options{
		PreserveComments:   true,
		RequiredFirstGroup: DesktopEntryGroupName,
	}
}

// Group is a named section of ordered lines with O(1) key lookup. Groups
// are owned exclusively by their Document.
type Group struct {
	name      string
	headerRaw string
	headerEOL string
	lines     []Line
	index     map[string]int
}

func newGroup(name, headerRaw, headerEOL string) *Group {
	return &Group{
		name:      name,
		headerRaw: headerRaw,
		headerEOL: headerEOL,
		index:     make(map[string]int),
	}
}

// Name returns the group's name
func (g *Group) Name() string { return g.name }

// Lines returns the group's stored lines, tombstones included
func (g *Group) Lines() []Line { return g.lines }

// Get returns the raw value stored for key. Removed keys are absent.
func (g *Group) Get(key string) (string, bool) {
	idx, ok := g.index[key]
	if !ok || g.lines[idx].kind != LineKeyValue {
		return "", false
	}
	return g.lines[idx].value, true
}

// GetOrDefault returns the raw value stored for key, or def if absent
func (g *Group) GetOrDefault(key, def string) string {
	if v, ok := g.Get(key); ok {
		return v
	}
	return def
}

// Contains reports whether key is present and not removed
func (g *Group) Contains(key string) bool {
	_, ok := g.Get(key)
	return ok
}

// Set stores a raw value for key. An existing line (or tombstone) for the
// key is rewritten in place, preserving its position; otherwise a new
// line is appended. The non-locale-suffixed portion of the key must match
// [A-Za-z0-9-].
func (g *Group) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		if dErr, ok := err.(*errors.DeskfileError); ok {
			return dErr.WithDetail("group", g.name).WithDetail("value", value)
		}
		return err
	}

	raw := key + "=" + value
	if idx, ok := g.index[key]; ok {
		line := &g.lines[idx]
		line.kind = LineKeyValue
		line.value = value
		line.raw = raw
		return nil
	}

	g.terminateLastLine()
	g.lines = append(g.lines, Line{
		kind:  LineKeyValue,
		key:   key,
		value: value,
		raw:   raw,
		eol:   "\n",
	})
	g.index[key] = len(g.lines) - 1
	return nil
}

// Remove converts the key's line into a tombstone. The index entry stays
// so a later Set revives the line in its original position. Absent keys
// are a no-op.
func (g *Group) Remove(key string) {
	idx, ok := g.index[key]
	if !ok || g.lines[idx].kind != LineKeyValue {
		return
	}
	g.lines[idx].kind = LineRemoved
}

// KeyValues iterates the group's live (key, value) pairs in insertion
// order, skipping comments and tombstones. The sequence is restartable.
func (g *Group) KeyValues() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, line := range g.lines {
			if line.kind != LineKeyValue {
				continue
			}
			if !yield(line.key, line.value) {
				return
			}
		}
	}
}

// appendComment is used by the parser; comments never enter the index
func (g *Group) appendComment(raw, eol string) {
	g.lines = append(g.lines, Line{kind: LineComment, raw: raw, eol: eol})
}

func (g *Group) appendKeyValue(key, value, raw, eol string) {
	g.lines = append(g.lines, Line{kind: LineKeyValue, key: key, value: value, raw: raw, eol: eol})
	if _, dup := g.index[key]; !dup {
		// first occurrence wins; later duplicates round-trip but never
		// resolve on lookup
		g.index[key] = len(g.lines) - 1
	}
}

// terminateLastLine gives the group's final line a newline so an appended
// line does not run into it. Relevant only for files whose last line had
// no terminator.
func (g *Group) terminateLastLine() {
	if n := len(g.lines); n > 0 {
		if g.lines[n-1].eol == "" {
			g.lines[n-1].eol = "\n"
		}
	} else if g.headerEOL == "" {
		g.headerEOL = "\n"
	}
}

// Document owns an ordered sequence of uniquely named groups plus any
// comment lines appearing before the first group header. A Document is
// exclusively owned by its creator; it provides no synchronization.
type Document struct {
	leading []Line
	groups  []*Group
	index   map[string]int
}

// New creates an empty Document pre-populated with a "Desktop Entry" group
func New() *Document {
	doc := &Document{index: make(map[string]int)}
	_, _ = doc.AddGroup(DesktopEntryGroupName)
	return doc
}

// Group returns the named group, if it exists
func (d *Document) Group(name string) (*Group, bool) {
	idx, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.groups[idx], true
}

// Groups returns the document's groups in file order
func (d *Document) Groups() []*Group {
	return d.groups
}

// FirstGroup returns the document's first group, if any
func (d *Document) FirstGroup() (*Group, bool) {
	if len(d.groups) == 0 {
		return nil, false
	}
	return d.groups[0], true
}

// LeadingComments returns the raw comment lines preceding the first group
func (d *Document) LeadingComments() []Line {
	return d.leading
}

// AddGroup appends a new empty group. Group names must be unique and
// non-empty.
func (d *Document) AddGroup(name string) (*Group, error) {
	if name == "" {
		return nil, errors.New(errors.ErrEmptyGroupName, "group name is empty")
	}
	if _, exists := d.index[name]; exists {
		return nil, errors.Newf(errors.ErrDuplicateGroup, "group %q already defined", name).
			WithDetail("group", name)
	}

	if n := len(d.groups); n > 0 {
		d.groups[n-1].terminateLastLine()
	}

	g := newGroup(name, "["+name+"]", "\n")
	d.groups = append(d.groups, g)
	d.index[name] = len(d.groups) - 1
	return g, nil
}

// Parse builds a Document from desktop entry text under the given policy.
// Any structural error aborts the parse; no partial Document is returned.
func Parse(text string, opts Options) (*Document, error) {
	doc := &Document{index: make(map[string]int)}

	var current *Group
	skipping := false
	seen := make(map[string]bool)

	lineNo := 0
	for raw, eol := range sourceLines(text) {
		lineNo++
		c := classifyLine(raw)

		switch c.kind {
		case classComment:
			if !opts.PreserveComments || skipping {
				continue
			}
			if current == nil {
				doc.leading = append(doc.leading, Line{kind: LineComment, raw: raw, eol: eol})
			} else {
				current.appendComment(raw, eol)
			}

		case classGroupHeader:
			name := c.groupName
			if name == "" {
				return nil, errors.New(errors.ErrEmptyGroupName, "group name is empty").WithLine(lineNo)
			}
			if seen[name] {
				return nil, errors.Newf(errors.ErrDuplicateGroup, "group %q already defined", name).
					WithDetail("group", name).WithLine(lineNo)
			}
			if len(seen) == 0 && opts.RequiredFirstGroup != "" && name != opts.RequiredFirstGroup {
				return nil, errors.Newf(errors.ErrInvalidFirstGroup,
					"first group is %q, expected %q", name, opts.RequiredFirstGroup).
					WithDetail("group", name).WithLine(lineNo)
			}
			seen[name] = true

			if opts.IsKnownGroup != nil && !opts.IsKnownGroup(name) {
				switch opts.UnknownGroups {
				case UnknownGroupSkip:
					current = nil
					skipping = true
					continue
				case UnknownGroupError:
					return nil, errors.Newf(errors.ErrInvalidInput, "unknown group %q", name).
						WithDetail("group", name).WithLine(lineNo)
				}
			}
			skipping = false

			g := newGroup(name, raw, eol)
			doc.groups = append(doc.groups, g)
			doc.index[name] = len(doc.groups) - 1
			current = g

		case classKeyValue:
			if skipping {
				continue
			}
			if current == nil {
				return nil, errors.Newf(errors.ErrKeyValueOutsideGroup,
					"key %q appears before any group header", c.key).
					WithDetail("key", c.key).WithLine(lineNo)
			}
			current.appendKeyValue(c.key, c.value, raw, eol)

		case classMalformed:
			return nil, errors.Newf(errors.ErrMalformedLine, "line %q is not a comment, group header, or key-value", raw).
				WithLine(lineNo)
		}
	}

	if opts.RequiredFirstGroup != "" && len(doc.groups) == 0 {
		return nil, errors.Newf(errors.ErrMissingRequiredGroup,
			"group %q not found", opts.RequiredFirstGroup).
			WithDetail("group", opts.RequiredFirstGroup).WithLine(lineNo)
	}

	return doc, nil
}

// sourceLines yields each line of text without its terminator, paired
// with the terminator actually used ("\n", "\r\n", or "" at EOF)
func sourceLines(text string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for len(text) > 0 {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				yield(text, "")
				return
			}
			raw, eol := text[:idx], "\n"
			if strings.HasSuffix(raw, "\r") {
				raw, eol = raw[:len(raw)-1], "\r\n"
			}
			if !yield(raw, eol) {
				return
			}
			text = text[idx+1:]
		}
	}
}
