package entry

import (
	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/locale"
)

// ActionGroupPrefix prefixes the group name of every action
const ActionGroupPrefix = "Desktop Action "

// Action is an additional application action declared by an entry. It is
// a projection over the entry's "Desktop Action <name>" group.
type Action struct {
	name  string
	group *document.Group
}

// ActionNames returns the entries of the Actions key, in declared order.
// Names without a valid backing group are included here; Action filters
// them.
func (f *File) ActionNames() []string {
	return SplitValues(f.Value(KeyActions))
}

// Action resolves a declared action. An action exists only if its name
// is listed in the Actions key, the "Desktop Action <name>" group is
// present, and that group's Name is non-empty.
func (f *File) Action(name string) (*Action, bool) {
	listed := false
	for _, n := range f.ActionNames() {
		if n == name {
			listed = true
			break
		}
	}
	if !listed {
		return nil, false
	}

	g, ok := f.doc.Group(ActionGroupPrefix + name)
	if !ok {
		return nil, false
	}
	if g.GetOrDefault(KeyName, "") == "" {
		return nil, false
	}
	return &Action{name: name, group: g}, true
}

// Actions resolves every valid declared action, in declared order
func (f *File) Actions() []*Action {
	var actions []*Action
	for _, name := range f.ActionNames() {
		if a, ok := f.Action(name); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// ID returns the action's identifier, as listed in the Actions key
func (a *Action) ID() string { return a.name }

// Group exposes the action's backing group
func (a *Action) Group() *document.Group { return a.group }

func (a *Action) value(key string) string {
	return document.UnescapeValue(a.group.GetOrDefault(key, ""))
}

// Name returns the action's display name
func (a *Action) Name() string { return a.value(KeyName) }

// Icon returns the action's icon name, if any
func (a *Action) Icon() string { return a.value(KeyIcon) }

// Exec returns the action's command template
func (a *Action) Exec() string { return a.value(KeyExec) }

// LocalizedName resolves the action's Name under the locale fallback rules
func (a *Action) LocalizedName(loc string) string {
	for _, candidate := range locale.CandidateKeys(KeyName, loc) {
		if v, ok := a.group.Get(candidate); ok {
			return document.UnescapeValue(v)
		}
	}
	return a.Name()
}
