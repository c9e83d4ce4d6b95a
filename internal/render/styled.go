package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/envguard/internal/mask"
	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
)

// Styled paints lines for a terminal.
type Styled struct {
	Theme       *theme.Theme
	MaskChar    string
	LineNumbers bool
	// Width truncates each rendered line to this many cells when > 0.
	Width int
	// Plain disables colors entirely.
	Plain bool
}

// NewStyled returns a Styled renderer using the current theme.
func NewStyled(maskChar string) *Styled {
	return &Styled{
		Theme:    theme.Current,
		MaskChar: maskChar,
	}
}

// Render returns the full document with regions painted, joined by "\n".
func (s *Styled) Render(lines []string, regions []mask.Region) string {
	return strings.Join(s.RenderLines(lines, regions), "\n")
}

// RenderLines returns one painted string per input line.
func (s *Styled) RenderLines(lines []string, regions []mask.Region) []string {
	th := s.Theme
	if th == nil {
		th = theme.Current
	}

	keyStyle := lipgloss.NewStyle().Foreground(th.KeyColor())
	maskStyle := lipgloss.NewStyle().Foreground(th.MaskColor()).Bold(true)
	commentStyle := lipgloss.NewStyle().Foreground(th.CommentColor()).Italic(true)
	textStyle := lipgloss.NewStyle().Foreground(th.Text)
	gutterStyle := lipgloss.NewStyle().Foreground(th.Overlay0)

	gutterWidth := 0
	if s.LineNumbers {
		gutterWidth = runewidth.StringWidth(fmt.Sprint(len(lines)))
	}

	byLine := ByLine(regions)
	out := make([]string, len(lines))
	for i, line := range lines {
		var gutter string
		if s.LineNumbers {
			gutter = fmt.Sprintf("%*d │ ", gutterWidth, i+1)
		}
		avail := 0
		if s.Width > 0 {
			avail = max(1, s.Width-runewidth.StringWidth(gutter))
		}

		var plain, painted string
		if r, ok := byLine[i]; ok {
			start, end := clampSpan(r, len(line))
			key := line[:start]
			value := Paint(r.Replacement, s.MaskChar) + line[end:]
			plain = key + value
			if avail > 0 && runewidth.StringWidth(plain) > avail {
				plain = runewidth.Truncate(plain, avail, "…")
				key, value = splitKey(plain, key)
			}
			painted = keyStyle.Render(key) + maskStyle.Render(value)
		} else {
			plain = line
			if avail > 0 {
				plain = runewidth.Truncate(plain, avail, "…")
			}
			if isComment(line) {
				painted = commentStyle.Render(plain)
			} else {
				painted = textStyle.Render(plain)
			}
		}

		if s.Plain {
			out[i] = gutter + plain
			continue
		}
		out[i] = gutterStyle.Render(gutter) + painted
	}
	return out
}

// splitKey separates a truncated line back into key and masked parts. When
// truncation cut into the key the whole line is styled as key.
func splitKey(truncated, key string) (string, string) {
	if !strings.HasPrefix(truncated, key) {
		return truncated, ""
	}
	return key, truncated[len(key):]
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
