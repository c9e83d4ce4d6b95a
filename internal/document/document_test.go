package document

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/envguard/internal/mask"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"A=1", []string{"A=1"}},
		{"A=1\n", []string{"A=1"}},
		{"A=1\nB=2\n", []string{"A=1", "B=2"}},
		{"A=1\r\nB=2\r\n", []string{"A=1", "B=2"}},
		{"\n\nA=1", []string{"", "", "A=1"}},
		{"A=1\n\n", []string{"A=1", ""}},
		{"\uFEFF", []string{}},
		{"\uFEFFA=1\nB=2", []string{"A=1", "B=2"}},
		{"A=\uFEFF", []string{"A=\uFEFF"}},
	}

	for _, tc := range cases {
		if got := SplitLines(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitLines(%q)=%#v want %#v", tc.in, got, tc.want)
		}
	}
}

func TestFromString_ByteOrderMarkComment(t *testing.T) {
	doc := FromString(".env", "\uFEFF# URL=x\nKEY=value\n")
	if doc.Lines[0] != "# URL=x" {
		t.Fatalf("first line = %q", doc.Lines[0])
	}
	regions := mask.ComputeRegions(doc.Lines, doc.Name, mask.DefaultOptions())
	if len(regions) != 1 || regions[0].Line != 1 {
		t.Fatalf("expected only KEY=value masked, got %+v", regions)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	if err := os.WriteFile(path, []byte("# c\nKEY=value\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != ".env.local" {
		t.Errorf("Name=%q", doc.Name)
	}
	if doc.Path != path {
		t.Errorf("Path=%q", doc.Path)
	}
	if doc.LineCount() != 2 {
		t.Errorf("LineCount=%d", doc.LineCount())
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader("A=1\nB=2"), "/tmp/x/.env")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.Name != ".env" || doc.Path != "" || doc.LineCount() != 2 {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestLineCount_Nil(t *testing.T) {
	var d *Document
	if d.LineCount() != 0 {
		t.Fatal("nil document should have zero lines")
	}
}
