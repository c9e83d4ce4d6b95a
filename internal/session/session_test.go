package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Dicklesworthstone/envguard/internal/config"
	"github.com/Dicklesworthstone/envguard/internal/watch"
)

type memConfig struct {
	mu        sync.Mutex
	cfg       config.Config
	loadErr   error
	toggleErr error
}

func newMemConfig() *memConfig {
	return &memConfig{cfg: config.DefaultConfig()}
}

func (m *memConfig) Load() (config.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg, m.loadErr
}

func (m *memConfig) Toggle() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.toggleErr != nil {
		return false, m.toggleErr
	}
	m.cfg.Mask.HideValues = !m.cfg.Mask.HideValues
	return m.cfg.Mask.HideValues, nil
}

func writeEnv(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestProcess_OpenComputesRegions(t *testing.T) {
	path := writeEnv(t, ".env.test", "# comment\n\nTEST_KEY1=test_value1\nSECRET_KEY=super_secret_value\n")
	s := New(newMemConfig(), SinkFunc(func(Snapshot) {}), Options{})

	snap := s.Process(Trigger{Kind: TriggerOpen, Path: path})
	if snap.Err != nil {
		t.Fatalf("unexpected error: %v", snap.Err)
	}
	if !snap.Applies || !snap.Hidden() {
		t.Fatalf("expected masking to apply: %+v", snap)
	}
	if len(snap.Regions) != 2 || snap.Regions[0].Line != 2 || snap.Regions[1].Line != 3 {
		t.Fatalf("unexpected regions %+v", snap.Regions)
	}
}

func TestProcess_ToggleFlipsAndRecomputes(t *testing.T) {
	path := writeEnv(t, ".env", "A=1\n")
	src := newMemConfig()
	s := New(src, SinkFunc(func(Snapshot) {}), Options{})
	s.Process(Trigger{Kind: TriggerOpen, Path: path})

	snap := s.Process(Trigger{Kind: TriggerToggle})
	if snap.Hidden() || len(snap.Regions) != 0 {
		t.Fatalf("toggle should reveal values: %+v", snap)
	}
	if snap.Status != "Values are now visible" {
		t.Fatalf("status=%q", snap.Status)
	}

	snap = s.Process(Trigger{Kind: TriggerToggle})
	if !snap.Hidden() || len(snap.Regions) != 1 {
		t.Fatalf("second toggle should hide values: %+v", snap)
	}
}

func TestProcess_ToggleError(t *testing.T) {
	src := newMemConfig()
	src.toggleErr = errors.New("read-only settings")
	s := New(src, SinkFunc(func(Snapshot) {}), Options{})

	snap := s.Process(Trigger{Kind: TriggerToggle})
	if snap.Err == nil || !snap.Hidden() {
		t.Fatalf("expected error and unchanged state, got %+v", snap)
	}
}

func TestProcess_ConfigLoadErrorKeepsMasking(t *testing.T) {
	path := writeEnv(t, ".env", "A=1\n")
	src := newMemConfig()
	src.cfg.Mask.HideValues = false
	src.loadErr = errors.New("broken toml")
	s := New(src, SinkFunc(func(Snapshot) {}), Options{})

	snap := s.Process(Trigger{Kind: TriggerOpen, Path: path})
	if snap.Err == nil {
		t.Fatal("expected config error to surface")
	}
	if len(snap.Regions) != 1 {
		t.Fatalf("expected defaults to keep masking, got %+v", snap.Regions)
	}
}

func TestProcess_MissingDocument(t *testing.T) {
	s := New(newMemConfig(), SinkFunc(func(Snapshot) {}), Options{})
	snap := s.Process(Trigger{Kind: TriggerOpen, Path: filepath.Join(t.TempDir(), ".env")})
	if snap.Err == nil {
		t.Fatal("expected read error")
	}
	if snap.Document == nil || snap.Document.Name != ".env" || len(snap.Regions) != 0 {
		t.Fatalf("expected empty placeholder document, got %+v", snap.Document)
	}
}

func TestProcess_NonMatchingFile(t *testing.T) {
	path := writeEnv(t, "notes.txt", "A=1\n")
	s := New(newMemConfig(), SinkFunc(func(Snapshot) {}), Options{})
	snap := s.Process(Trigger{Kind: TriggerOpen, Path: path})
	if snap.Applies || len(snap.Regions) != 0 {
		t.Fatalf("non-env file should not be masked: %+v", snap)
	}
}

func TestProcess_UnknownTrigger(t *testing.T) {
	s := New(newMemConfig(), SinkFunc(func(Snapshot) {}), Options{})
	if snap := s.Process(Trigger{Kind: "bogus"}); snap.Err == nil {
		t.Fatal("expected error for unknown trigger")
	}
}

func TestRun_ProcessesInOrder(t *testing.T) {
	path := writeEnv(t, ".env", "A=1\nB=22\n")
	src := newMemConfig()

	var mu sync.Mutex
	var seen []TriggerKind
	var last Snapshot
	done := make(chan struct{})
	sink := SinkFunc(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s.Trigger)
		last = s
		n := len(seen)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	})

	s := New(src, sink, Options{ID: "test-session"})
	if s.ID() != "test-session" {
		t.Fatalf("ID=%q", s.ID())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Run(ctx) }()

	if err := s.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshots")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []TriggerKind{TriggerOpen, TriggerToggle, TriggerReload}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("order=%v want %v", seen, want)
	}
	if len(last.Regions) != 0 {
		t.Fatalf("regions should be empty after toggle, got %v", last.Regions)
	}
	if last.Document == nil || !reflect.DeepEqual(last.Document.Lines, []string{"A=1", "B=22"}) {
		t.Fatalf("last document=%+v", last.Document)
	}
}

func TestPost_AfterRunStops(t *testing.T) {
	s := New(newMemConfig(), SinkFunc(func(Snapshot) {}), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = s.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	if err := s.Toggle(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestForward_MapsWatcherEvents(t *testing.T) {
	s := New(newMemConfig(), SinkFunc(func(Snapshot) {}), Options{})
	events := make(chan watch.Event, 2)
	events <- watch.Event{Kind: watch.DocumentChanged, Path: "/x/.env"}
	events <- watch.Event{Kind: watch.ConfigChanged, Path: "/home/config.toml"}
	close(events)

	s.Forward(context.Background(), events)

	first := <-s.queue
	second := <-s.queue
	if first.Kind != TriggerEdited || second.Kind != TriggerConfigChanged {
		t.Fatalf("unexpected triggers %+v %+v", first, second)
	}
}

func TestFileConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ENVGUARD_HIDE_VALUES", "")
	src := FileConfig{Options: config.LoadOptions{ProjectDir: t.TempDir()}}

	cfg, err := src.Load()
	if err != nil || !cfg.Mask.HideValues {
		t.Fatalf("Load = %+v, %v", cfg.Mask, err)
	}
	hidden, err := src.Toggle()
	if err != nil || hidden {
		t.Fatalf("Toggle = %v, %v", hidden, err)
	}
	if _, err := os.Stat(filepath.Join(home, ".envguard", "config.toml")); err != nil {
		t.Fatalf("toggle not persisted: %v", err)
	}
}
