package execline

import (
	"testing"

	"github.com/arthur-debert/deskfile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "plain words",
			value: "editor --new-window file.txt",
			want:  []string{"editor", "--new-window", "file.txt"},
		},
		{
			name:  "quoted command and argument",
			value: `"quoted cmd" arg1 "quoted arg"`,
			want:  []string{"quoted cmd", "arg1", "quoted arg"},
		},
		{
			name:  "single quotes",
			value: `viewer 'my file.png'`,
			want:  []string{"viewer", "my file.png"},
		},
		{
			name:  "escaped quote inside quotes",
			value: `prog "say \"hi\""`,
			want:  []string{"prog", `say "hi"`},
		},
		{
			name:  "escaped backslash inside quotes",
			value: `prog "back\\slash"`,
			want:  []string{"prog", `back\slash`},
		},
		{
			name:  "other in-quote backslash is literal",
			value: `prog "C:\temp"`,
			want:  []string{"prog", `C:\temp`},
		},
		{
			name:  "backslash escapes whitespace outside quotes",
			value: `prog my\ file.txt`,
			want:  []string{"prog", "my file.txt"},
		},
		{
			name:  "backslash escapes metacharacter outside quotes",
			value: `prog \$HOME \&rest`,
			want:  []string{"prog", "$HOME", "&rest"},
		},
		{
			name:  "backslash before plain character is literal",
			value: `prog a\b`,
			want:  []string{"prog", `a\b`},
		},
		{
			name:  "adjacent quoted spans join into one token",
			value: `prog "one"'two'`,
			want:  []string{"prog", "onetwo"},
		},
		{
			name:  "empty quoted argument survives",
			value: `prog ""`,
			want:  []string{"prog", ""},
		},
		{
			name:  "runs of whitespace collapse",
			value: "prog \t  arg",
			want:  []string{"prog", "arg"},
		},
		{
			name:  "blank input yields no tokens",
			value: "   \t ",
			want:  nil,
		},
		{
			name:  "empty input yields no tokens",
			value: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquote_UnterminatedQuote(t *testing.T) {
	for _, value := range []string{
		`cmd "unterminated`,
		`cmd 'unterminated`,
		`cmd "ends with escape \"`,
	} {
		_, err := Unquote(value)
		require.Error(t, err, "value %q", value)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnterminatedQuote))
	}
}

func TestNeedsQuoting(t *testing.T) {
	quoted := []string{"", "two words", "semi;colon", "a$b", "tick`tock", `back\slash`, "par(en", "ha#sh", "til~de"}
	for _, arg := range quoted {
		assert.True(t, NeedsQuoting(arg), "arg %q", arg)
	}

	plain := []string{"editor", "--new-window", "/usr/bin/editor", "file.txt", "%U"}
	for _, arg := range plain {
		assert.False(t, NeedsQuoting(arg), "arg %q", arg)
	}
}

func TestBuildExecString_RoundTrip(t *testing.T) {
	tests := [][]string{
		{"editor", "%U"},
		{"sh", "-c", `echo "hello world"`},
		{"viewer", "my file.png", ""},
		{"prog", `back\slash`, "a$b"},
	}

	for _, args := range tests {
		built := BuildExecString(args)
		back, err := Unquote(built)
		require.NoError(t, err, "built %q", built)
		assert.Equal(t, args, back, "built %q", built)
	}

	assert.Equal(t, `editor "two words" %f`, BuildExecString([]string{"editor", "two words", "%f"}))
}
