package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(Options{Debounce: 30 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func expectEvent(t *testing.T, w *Watcher, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func expectNoEvent(t *testing.T, w *Watcher, wait time.Duration) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(wait):
	}
}

func TestWatcher_DocumentWrite(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, ".env")
	writeFile(t, doc, "A=1\n")

	w := startWatcher(t)
	if err := w.AddDocument(doc); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	writeFile(t, doc, "A=2\n")
	ev := expectEvent(t, w, 2*time.Second)
	if ev.Kind != DocumentChanged || ev.Path != doc || ev.Removed {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, ".env")
	writeFile(t, doc, "A=1\n")

	w := startWatcher(t)
	if err := w.AddDocument(doc); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	for i := 0; i < 5; i++ {
		writeFile(t, doc, "A=burst\n")
	}
	expectEvent(t, w, 2*time.Second)
	expectNoEvent(t, w, 150*time.Millisecond)
}

func TestWatcher_IgnoresUnregisteredFiles(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, ".env")
	writeFile(t, doc, "A=1\n")

	w := startWatcher(t)
	if err := w.AddDocument(doc); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	writeFile(t, filepath.Join(dir, "other.txt"), "x")
	expectNoEvent(t, w, 150*time.Millisecond)
}

func TestWatcher_ConfigKindAndRemoval(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	writeFile(t, cfg, "[mask]\n")

	w := startWatcher(t)
	if err := w.AddConfig(cfg); err != nil {
		t.Fatalf("AddConfig: %v", err)
	}

	if err := os.Remove(cfg); err != nil {
		t.Fatalf("remove: %v", err)
	}
	ev := expectEvent(t, w, 2*time.Second)
	if ev.Kind != ConfigChanged || !ev.Removed {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestWatcher_AddConfigMissingDir(t *testing.T) {
	w := startWatcher(t)
	if err := w.AddConfig(filepath.Join(t.TempDir(), "missing", "config.toml")); err != nil {
		t.Fatalf("AddConfig on missing dir should be a no-op, got %v", err)
	}
	if err := w.AddConfig(""); err != nil {
		t.Fatalf("AddConfig(\"\") = %v", err)
	}
}

func TestKindString(t *testing.T) {
	if DocumentChanged.String() != "document" || ConfigChanged.String() != "config" || Kind(9).String() != "unknown" {
		t.Fatal("unexpected Kind strings")
	}
}
