// Package mask computes which parts of an environment file should be hidden
// from the screen and what to paint over them.
package mask

// Default file patterns for environment files.
var defaultFilePatterns = []string{".env", ".env.*"}

// Options is the per-call configuration snapshot the engine works from.
type Options struct {
	// FilePatterns are shell-style globs matched against the base file name.
	FilePatterns []string `json:"file_patterns" yaml:"file_patterns"`
	// HideValues disables masking entirely when false.
	HideValues bool `json:"hide_values" yaml:"hide_values"`
}

// DefaultOptions returns Options with the built-in patterns and masking on.
func DefaultOptions() Options {
	patterns := make([]string, len(defaultFilePatterns))
	copy(patterns, defaultFilePatterns)
	return Options{
		FilePatterns: patterns,
		HideValues:   true,
	}
}

// Region is a single masked span on one line.
type Region struct {
	// Line is the 0-indexed line number.
	Line int `json:"line" yaml:"line"`
	// StartCol is the byte offset immediately after the first '='.
	StartCol int `json:"start_col" yaml:"start_col"`
	// EndCol is the byte offset of the end of the line.
	EndCol int `json:"end_col" yaml:"end_col"`
	// Replacement is the text painted over the span.
	Replacement string `json:"replacement" yaml:"replacement"`
}

// Len returns the number of replacement characters.
func (r Region) Len() int {
	return len(r.Replacement)
}
