package mask

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	maskRune     = "*"
	commentStart = "#"
	separator    = '='
)

// ComputeRegions returns the mask regions for lines of a document named
// fileName. It returns nil when the file matches none of opts.FilePatterns or
// when opts.HideValues is false.
//
// Lines are handled independently:
//   - blank lines and lines starting with '#' (after trimming) are skipped
//   - lines without '=' are skipped
//   - otherwise the span after the first '=' up to the end of the line is
//     masked with one '*' per rune of the trimmed value, and at least one
func ComputeRegions(lines []string, fileName string, opts Options) []Region {
	if !Applies(fileName, opts) {
		return nil
	}

	var regions []Region
	for i, line := range lines {
		if r, ok := classify(i, line); ok {
			regions = append(regions, r)
		}
	}
	return regions
}

// Applies reports whether masking should happen for fileName under opts.
func Applies(fileName string, opts Options) bool {
	return opts.HideValues && MatchesFile(fileName, opts.FilePatterns)
}

// MatchesFile reports whether the base name of fileName matches any pattern.
// Malformed patterns never match.
func MatchesFile(fileName string, patterns []string) bool {
	if fileName == "" {
		return false
	}
	base := filepath.Base(fileName)
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// classify turns a single line into a region, if it holds an assignment.
func classify(index int, line string) (Region, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentStart) {
		return Region{}, false
	}

	eq := strings.IndexByte(line, separator)
	if eq < 0 {
		return Region{}, false
	}

	start := eq + 1
	value := strings.TrimSpace(line[start:])
	return Region{
		Line:        index,
		StartCol:    start,
		EndCol:      len(line),
		Replacement: strings.Repeat(maskRune, max(1, utf8.RuneCountInString(value))),
	}, true
}
