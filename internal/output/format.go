// Package output renders command results as text, JSON or YAML.
package output

import (
	"fmt"
	"strings"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text|json|yaml)", s)
	}
}

// IsStructured reports whether the format is machine-readable.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}
