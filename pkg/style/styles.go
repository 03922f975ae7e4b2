// Package style defines the visual styling for deskfile's terminal
// output. All styles use semantic names and adaptive colors that adjust
// to light and dark terminal themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Entry fields
	KeyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	LocaleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Code and path styles
	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// Renderer applies styles only when styling is enabled, so piped and
// dumb-terminal output stays plain.
type Renderer struct {
	enabled bool
}

// NewRenderer creates a renderer; pass false for plain output
func NewRenderer(enabled bool) *Renderer {
	return &Renderer{enabled: enabled}
}

// Render formats text with the given style when enabled
func (r *Renderer) Render(st lipgloss.Style, text string) string {
	if !r.enabled {
		return text
	}
	return st.Render(text)
}
