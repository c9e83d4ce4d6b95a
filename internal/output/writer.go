package output

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"
)

// ErrorPayload is the canonical structured error shape.
type ErrorPayload struct {
	Error   string `json:"error" yaml:"error"`
	Message string `json:"message" yaml:"message"`
	Details any    `json:"details,omitempty" yaml:"details,omitempty"`
}

// TextFunc renders a value for humans.
type TextFunc func(w io.Writer) error

// Writer writes values in a chosen format.
type Writer struct {
	format Format
	out    io.Writer
}

// New returns a Writer for format. A nil out writes to stdout.
func New(format Format, out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// Write encodes v. In text mode text is called instead; when text is nil v
// is printed with %v.
func (w *Writer) Write(v any, text TextFunc) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		if text != nil {
			return text(w.out)
		}
		_, err := fmt.Fprintln(w.out, v)
		return err
	}
}

// WriteError writes a structured error payload. The numeric code is
// included in details for machine handling.
func (w *Writer) WriteError(err error, code int) error {
	payload := ErrorPayload{
		Error:   "error",
		Message: err.Error(),
		Details: map[string]any{"code": code},
	}
	return w.Write(payload, func(out io.Writer) error {
		_, werr := fmt.Fprintf(out, "error: %s\n", err)
		return werr
	})
}
