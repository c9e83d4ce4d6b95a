// Package render paints mask regions over document lines.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/Dicklesworthstone/envguard/internal/mask"
)

// DefaultMaskChar is the character the engine emits.
const DefaultMaskChar = "*"

// Apply returns a copy of lines with every region's span replaced by its
// replacement text, painted with maskChar. Lines without a region are
// returned unchanged and the input slice is never modified.
func Apply(lines []string, regions []mask.Region, maskChar string) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	for _, r := range regions {
		if r.Line < 0 || r.Line >= len(out) {
			continue
		}
		line := lines[r.Line]
		start, end := clampSpan(r, len(line))
		out[r.Line] = line[:start] + Paint(r.Replacement, maskChar) + line[end:]
	}
	return out
}

// Paint re-draws replacement using maskChar, keeping its rune count.
func Paint(replacement, maskChar string) string {
	if maskChar == "" || maskChar == DefaultMaskChar {
		return replacement
	}
	return strings.Repeat(maskChar, utf8.RuneCountInString(replacement))
}

func clampSpan(r mask.Region, lineLen int) (int, int) {
	start := min(max(0, r.StartCol), lineLen)
	end := min(max(start, r.EndCol), lineLen)
	return start, end
}

// ByLine indexes regions by line number.
func ByLine(regions []mask.Region) map[int]mask.Region {
	idx := make(map[int]mask.Region, len(regions))
	for _, r := range regions {
		idx[r.Line] = r
	}
	return idx
}
