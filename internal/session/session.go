// Package session drives the masking engine from trigger events.
//
// A Session owns the active document and processes triggers one at a time,
// in arrival order, on a single goroutine. Every trigger reads a fresh
// configuration snapshot, recomputes the full region set and hands it to the
// sink, which replaces whatever it showed before.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Dicklesworthstone/envguard/internal/config"
	"github.com/Dicklesworthstone/envguard/internal/document"
	"github.com/Dicklesworthstone/envguard/internal/mask"
	"github.com/Dicklesworthstone/envguard/internal/watch"
)

// TriggerKind names the host event that caused a recomputation.
type TriggerKind string

const (
	TriggerOpen          TriggerKind = "open"
	TriggerEdited        TriggerKind = "edited"
	TriggerConfigChanged TriggerKind = "config_changed"
	TriggerToggle        TriggerKind = "toggle"
	TriggerReload        TriggerKind = "reload"
)

// Trigger is a queued host event.
type Trigger struct {
	Kind TriggerKind
	// Path is set for TriggerOpen.
	Path string
}

// ConfigSource supplies settings snapshots and persists the visibility toggle.
type ConfigSource interface {
	Load() (config.Config, error)
	// Toggle negates hide_values, persists it and returns the effective value.
	Toggle() (bool, error)
}

// Snapshot is what the sink receives after each trigger.
type Snapshot struct {
	Seq      int
	Trigger  TriggerKind
	Document *document.Document
	Regions  []mask.Region
	Config   config.Config
	// Applies is true when the document matched a pattern and masking is on.
	Applies bool
	// Status is a short human message, e.g. after a toggle.
	Status string
	// Err carries host-side failures (unreadable file, rejected settings write).
	Err error
}

// Hidden reports whether values are currently masked.
func (s Snapshot) Hidden() bool {
	return s.Config.Mask.HideValues
}

// Sink consumes snapshots.
type Sink interface {
	Update(Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Snapshot)

// Update implements Sink.
func (f SinkFunc) Update(s Snapshot) { f(s) }

// Options configures a Session.
type Options struct {
	// ID identifies the session in logs. Generated when empty.
	ID string
	// Logger defaults to a discarding logger.
	Logger *log.Logger
	// QueueSize bounds pending triggers. Default: 32
	QueueSize int
	// LoadDocument reads documents. Default: document.Load
	LoadDocument func(path string) (*document.Document, error)
}

// Session is the adapter between host events and the masking engine.
type Session struct {
	id     string
	source ConfigSource
	sink   Sink
	logger *log.Logger
	load   func(string) (*document.Document, error)

	queue chan Trigger
	done  chan struct{}

	// owned by the processing goroutine
	path string
	doc  *document.Document
	seq  int
}

// New creates a Session.
func New(source ConfigSource, sink Sink, opts Options) *Session {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 32
	}
	if opts.LoadDocument == nil {
		opts.LoadDocument = document.Load
	}
	return &Session{
		id:     opts.ID,
		source: source,
		sink:   sink,
		logger: opts.Logger,
		load:   opts.LoadDocument,
		queue:  make(chan Trigger, opts.QueueSize),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// ErrClosed is returned when posting to a stopped session.
var ErrClosed = errors.New("session closed")

// Post queues a trigger. It blocks while the queue is full.
func (s *Session) Post(t Trigger) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.queue <- t:
		return nil
	case <-s.done:
		return ErrClosed
	}
}

// Open queues an open/switch of the active document.
func (s *Session) Open(path string) error {
	return s.Post(Trigger{Kind: TriggerOpen, Path: path})
}

// Toggle queues the visibility toggle command.
func (s *Session) Toggle() error {
	return s.Post(Trigger{Kind: TriggerToggle})
}

// Reload queues a re-read of the active document.
func (s *Session) Reload() error {
	return s.Post(Trigger{Kind: TriggerReload})
}

// Run processes triggers until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-s.queue:
			s.sink.Update(s.Process(t))
		}
	}
}

// Forward posts watcher events as triggers until ctx is cancelled or the
// event channel closes.
func (s *Session) Forward(ctx context.Context, events <-chan watch.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			kind := TriggerEdited
			if ev.Kind == watch.ConfigChanged {
				kind = TriggerConfigChanged
			}
			s.logger.Debug("trigger from watcher", "kind", kind, "path", ev.Path, "removed", ev.Removed)
			if err := s.Post(Trigger{Kind: kind, Path: ev.Path}); err != nil {
				return
			}
		}
	}
}

// Process handles one trigger synchronously. Run calls it for every queued
// trigger; hosts without an event loop may call it directly.
func (s *Session) Process(t Trigger) Snapshot {
	s.seq++
	snap := Snapshot{Seq: s.seq, Trigger: t.Kind}

	switch t.Kind {
	case TriggerOpen:
		s.path = t.Path
		s.doc = nil
		s.reloadDocument(&snap)
	case TriggerEdited, TriggerReload:
		s.reloadDocument(&snap)
	case TriggerToggle:
		hidden, err := s.source.Toggle()
		if err != nil {
			snap.Err = fmt.Errorf("toggle visibility: %w", err)
		} else if hidden {
			snap.Status = "Values are now hidden"
		} else {
			snap.Status = "Values are now visible"
		}
	case TriggerConfigChanged:
	default:
		snap.Err = fmt.Errorf("unknown trigger %q", t.Kind)
	}

	cfg, err := s.source.Load()
	if err != nil {
		// Keep masking with defaults rather than revealing on a broken file.
		s.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
		if snap.Err == nil {
			snap.Err = err
		}
	}
	snap.Config = cfg
	snap.Document = s.doc

	if s.doc != nil {
		opts := cfg.MaskOptions()
		snap.Applies = mask.Applies(s.doc.Name, opts)
		snap.Regions = mask.ComputeRegions(s.doc.Lines, s.doc.Name, opts)
	}

	s.logger.Debug("recomputed",
		"seq", snap.Seq,
		"trigger", t.Kind,
		"regions", len(snap.Regions),
		"applies", snap.Applies,
	)
	return snap
}

func (s *Session) reloadDocument(snap *Snapshot) {
	if s.path == "" {
		return
	}
	doc, err := s.load(s.path)
	if err != nil {
		snap.Err = err
		// The file may be mid-replace; keep an empty document under the same name.
		s.doc = document.FromString(s.path, "")
		s.doc.Path = s.path
		return
	}
	s.doc = doc
}
