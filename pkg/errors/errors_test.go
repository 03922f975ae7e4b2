package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeskfileError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DeskfileError
		expected string
	}{
		{
			name:     "without wrapped error",
			err:      New(ErrMalformedLine, "line is not a comment, header, or key-value"),
			expected: "[MALFORMED_LINE] line is not a comment, header, or key-value",
		},
		{
			name:     "with wrapped error",
			err:      Wrap(fmt.Errorf("permission denied"), ErrFileAccess, "cannot read entry"),
			expected: "[FILE_ACCESS] cannot read entry: permission denied",
		},
		{
			name:     "formatted message",
			err:      Newf(ErrDuplicateGroup, "group %q already defined", "Desktop Entry"),
			expected: `[DUPLICATE_GROUP] group "Desktop Entry" already defined`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDeskfileError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := Wrap(inner, ErrLaunchFailed, "spawn failed")
	assert.Equal(t, inner, errors.Unwrap(err))

	assert.Nil(t, Wrap(nil, ErrLaunchFailed, "ignored"))
}

func TestDeskfileError_Is(t *testing.T) {
	err := New(ErrUnterminatedQuote, "exec value ends inside a quote")

	assert.True(t, errors.Is(err, New(ErrUnterminatedQuote, "other message")))
	assert.False(t, errors.Is(err, New(ErrUnknownFieldCode, "other code")))
}

func TestWithLine(t *testing.T) {
	err := New(ErrKeyValueOutsideGroup, "key-value before any group header").WithLine(7)

	assert.Equal(t, 7, err.Line())
	assert.Equal(t, 7, GetErrorDetails(err)["line"])

	assert.Equal(t, 0, New(ErrInternal, "no line recorded").Line())
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrInvalidKey, "bad key").WithDetail("group", "Desktop Entry").WithDetail("key", "Na me")

	assert.True(t, IsErrorCode(err, ErrInvalidKey))
	assert.False(t, IsErrorCode(err, ErrInvalidPathValue))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrInvalidKey))

	// wrapped chains still match by code
	outer := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorCode(outer, ErrInvalidKey))
}

func TestGetErrorCode(t *testing.T) {
	require.Equal(t, ErrEmptyExec, GetErrorCode(New(ErrEmptyExec, "no tokens")))
	require.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}
