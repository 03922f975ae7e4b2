package entry

import (
	"testing"

	"github.com/arthur-debert/deskfile/pkg/document"
	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editorEntry = `[Desktop Entry]
Type=Application
Name=Programmer
Name[ru_RU]=Разработчик
Name[ru@jargon]=Кодер
Name[ru]=Программист
GenericName=Text Editor
Comment=Edits text\nfast
Icon=editor
Exec=editor %U
Terminal=false
Hidden=0
StartupNotify=true
Categories=Development;IDE;
Keywords=code;editor;
MimeType=text/plain;
OnlyShowIn=GNOME;KDE;
NotShowIn=Gamescope;
Actions=new-window;missing-group;unnamed;
Path=/home/user

[Desktop Action new-window]
Name=New Window
Name[ru]=Новое окно
Exec=editor --new-window

[Desktop Action unnamed]
Exec=editor --whoami
`

func parseEditor(t *testing.T) *File {
	t.Helper()
	f, err := Parse(editorEntry, "/usr/share/applications/editor.desktop", document.StrictOptions())
	require.NoError(t, err)
	return f
}

func TestType(t *testing.T) {
	tests := []struct {
		name string
		text string
		path string
		want Type
	}{
		{"application", "[Desktop Entry]\nType=Application\n", "app.desktop", TypeApplication},
		{"link", "[Desktop Entry]\nType=Link\nURL=https://example.org\n", "link.desktop", TypeLink},
		{"directory by key", "[Desktop Entry]\nType=Directory\n", "whatever", TypeDirectory},
		{"directory by file name", "[Desktop Entry]\nName=Apps\n", "menu/apps.directory", TypeDirectory},
		{"unrecognized type with directory name", "[Desktop Entry]\nType=Wat\n", "x.directory", TypeDirectory},
		{"unrecognized type", "[Desktop Entry]\nType=Wat\n", "x.desktop", TypeUnknown},
		{"absent type", "[Desktop Entry]\nName=App\n", "x.desktop", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.text, tt.path, document.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Type())
			assert.Equal(t, tt.want.String(), f.Type().String())
		})
	}
}

func TestLocalizedValue_Fallback(t *testing.T) {
	f := parseEditor(t)

	tests := []struct {
		locale string
		want   string
	}{
		{"ru@jargon", "Кодер"},
		{"ru_RU@jargon", "Разработчик"},
		{"ru_RU", "Разработчик"},
		{"ru", "Программист"},
		{"ru_RU.UTF-8", "Разработчик"},
		{"xx", "Programmer"},
		{"", "Programmer"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, f.LocalizedName(tt.locale))
		})
	}
}

func TestScalarAccessors(t *testing.T) {
	f := parseEditor(t)

	assert.Equal(t, "Programmer", f.Name())
	assert.Equal(t, "Text Editor", f.GenericName())
	assert.Equal(t, "Edits text\nfast", f.Comment(), "general escapes resolve on read")
	assert.Equal(t, "editor", f.Icon())
	assert.Equal(t, "editor %U", f.Exec())
	assert.Equal(t, "/home/user", f.WorkingDirectory())
	assert.Equal(t, "", f.TryExec())
	assert.Equal(t, "/usr/share/applications/editor.desktop", f.FileName())
}

func TestBooleanAccessors(t *testing.T) {
	f := parseEditor(t)

	assert.False(t, f.Terminal())
	assert.False(t, f.Hidden())
	assert.True(t, f.StartupNotify())
	assert.False(t, f.NoDisplay(), "absent key is not true")
	assert.False(t, f.DBusActivatable())

	assert.True(t, IsTrue("1"))
	assert.True(t, IsFalse("0"))
	assert.False(t, IsTrue("yes"), "only true/1 mean true")
	assert.False(t, IsFalse("no"), "only false/0 mean false")
}

func TestListAccessors(t *testing.T) {
	f := parseEditor(t)

	assert.Equal(t, []string{"Development", "IDE"}, f.Categories())
	assert.Equal(t, []string{"code", "editor"}, f.Keywords())
	assert.Equal(t, []string{"text/plain"}, f.MimeTypes())
	assert.Equal(t, []string{"GNOME", "KDE"}, f.OnlyShowIn())
	assert.Equal(t, []string{"Gamescope"}, f.NotShowIn())
}

func TestShowIn(t *testing.T) {
	f := parseEditor(t)

	assert.True(t, f.ShowIn("GNOME"))
	assert.True(t, f.ShowIn("KDE"))
	assert.False(t, f.ShowIn("Gamescope"), "NotShowIn wins")
	assert.False(t, f.ShowIn("XFCE"), "not in OnlyShowIn")

	open, err := Parse("[Desktop Entry]\nType=Application\nName=App\n", "", document.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, open.ShowIn("Anything"), "no restrictions at all")
}

func TestActions(t *testing.T) {
	f := parseEditor(t)

	assert.Equal(t, []string{"new-window", "missing-group", "unnamed"}, f.ActionNames())

	a, ok := f.Action("new-window")
	require.True(t, ok)
	assert.Equal(t, "new-window", a.ID())
	assert.Equal(t, "New Window", a.Name())
	assert.Equal(t, "Новое окно", a.LocalizedName("ru"))
	assert.Equal(t, "editor --new-window", a.Exec())
	assert.Equal(t, "", a.Icon())

	_, ok = f.Action("missing-group")
	assert.False(t, ok, "listed but no group")

	_, ok = f.Action("unnamed")
	assert.False(t, ok, "group exists but Name is empty")

	_, ok = f.Action("unlisted")
	assert.False(t, ok, "group would be valid but the name is not listed")

	valid := f.Actions()
	require.Len(t, valid, 1)
	assert.Equal(t, "new-window", valid[0].ID())
}

func TestSetters(t *testing.T) {
	f := New()

	require.NoError(t, f.SetType(TypeApplication))
	require.NoError(t, f.SetName("Demo"))
	require.NoError(t, f.SetExec("demo %f"))
	require.NoError(t, f.SetTerminal(true))
	require.NoError(t, f.SetCategories([]string{"Development", "0;1"}))
	require.NoError(t, f.SetValue("Comment", "two\nlines"))

	assert.Equal(t, TypeApplication, f.Type())
	assert.True(t, f.Terminal())
	assert.Equal(t, []string{"Development", "0;1"}, f.Categories())
	assert.Equal(t, "two\nlines", f.Value("Comment"))

	g := f.DesktopEntry()
	raw, _ := g.Get("Comment")
	assert.Equal(t, `two\nlines`, raw, "escape layer applied on write")
}

func TestSetLocalizedValue(t *testing.T) {
	f := New()
	require.NoError(t, f.SetName("Editor"))
	require.NoError(t, f.SetLocalizedValue(KeyName, "ru_RU.UTF-8", "Редактор"))

	g := f.DesktopEntry()
	assert.True(t, g.Contains("Name[ru_RU]"), "encoding dropped from the written key")
	assert.Equal(t, "Редактор", f.LocalizedName("ru_RU"))
}

func TestSetWorkingDirectory(t *testing.T) {
	f := New()

	require.NoError(t, f.SetWorkingDirectory("/srv/app"))
	assert.Equal(t, "/srv/app", f.WorkingDirectory())

	err := f.SetWorkingDirectory("/bad\npath")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPathValue))
	assert.Equal(t, "/srv/app", f.WorkingDirectory(), "value unchanged on error")
}

func TestAccessors_WithoutDesktopEntryGroup(t *testing.T) {
	f, err := Parse("[Other]\na=b\n", "", document.DefaultOptions())
	require.NoError(t, err)

	assert.Nil(t, f.DesktopEntry())
	assert.Equal(t, "", f.Name())
	assert.Equal(t, "def", f.LocalizedValue(KeyName, "ru", "def"))
	assert.True(t, errors.IsErrorCode(f.SetName("x"), errors.ErrMissingRequiredGroup))
}
