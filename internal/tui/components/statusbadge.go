// Package components provides reusable TUI pieces.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/envguard/internal/tui/icons"
	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
)

// Badge states.
const (
	StateHidden    = "hidden"
	StateVisible   = "visible"
	StateUnmatched = "unmatched"
	StateError     = "error"
	StateLoading   = "loading"
)

// StatusBadge renders a visibility state as a colored badge.
type StatusBadge struct {
	State    string
	Theme    *theme.Theme
	Compact  bool
	ShowIcon bool
}

// NewStatusBadge creates a new status badge.
func NewStatusBadge(state string) *StatusBadge {
	return &StatusBadge{
		State:    state,
		ShowIcon: true,
	}
}

// WithTheme renders the badge with th instead of theme.Current.
func (s *StatusBadge) WithTheme(th *theme.Theme) *StatusBadge {
	s.Theme = th
	return s
}

// AsCompact sets the badge to compact mode.
func (s *StatusBadge) AsCompact() *StatusBadge {
	s.Compact = true
	return s
}

// WithIcon enables or disables the icon.
func (s *StatusBadge) WithIcon(show bool) *StatusBadge {
	s.ShowIcon = show
	return s
}

// Render renders the status badge.
func (s *StatusBadge) Render() string {
	t := s.Theme
	if t == nil {
		t = theme.Current
	}
	state := strings.ToLower(s.State)

	var fg, bg lipgloss.Color
	switch state {
	case StateHidden:
		fg, bg = t.Base, t.StateColor(true)
	case StateVisible:
		fg, bg = t.Base, t.StateColor(false)
	case StateUnmatched:
		fg, bg = t.Text, t.Overlay0
	case StateError:
		fg, bg = t.Base, t.Yellow
	default:
		fg, bg = t.Text, t.Surface
	}

	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(true).
		Padding(0, 1)

	label := strings.ToUpper(s.State)
	var content string
	switch {
	case s.ShowIcon && s.Compact:
		content = icons.StateIcon(state)
	case s.ShowIcon:
		content = icons.StateIcon(state) + " " + label
	case s.Compact && label != "":
		content = label[:1]
	default:
		content = label
	}

	return style.Render(content)
}
