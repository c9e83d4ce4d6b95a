// Package document loads text files as ordered line sequences.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is an immutable snapshot of a file's lines.
type Document struct {
	// Path is the location the document was read from (may be empty for stdin).
	Path string
	// Name is the base name used for file pattern matching.
	Name string
	// Lines holds the text without line terminators.
	Lines []string
}

// Load reads the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	doc := FromString(filepath.Base(path), string(data))
	doc.Path = path
	return doc, nil
}

// Read consumes r entirely. name is used for pattern matching.
func Read(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	return FromString(name, string(data)), nil
}

// FromString splits text on "\n" and "\r\n". A trailing newline does not
// produce an extra empty line.
func FromString(name, text string) *Document {
	return &Document{
		Name:  filepath.Base(name),
		Lines: SplitLines(text),
	}
}

const byteOrderMark = "\uFEFF"

// SplitLines splits text into lines without terminators. A leading UTF-8
// byte order mark is dropped.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, byteOrderMark)
	if text == "" {
		return []string{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}
