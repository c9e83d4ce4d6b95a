package render

import (
	"sync"

	"github.com/Dicklesworthstone/envguard/internal/document"
	"github.com/Dicklesworthstone/envguard/internal/mask"
)

// Renderer holds the region set currently painted over the active document.
// Every Set replaces the previous set wholesale.
type Renderer struct {
	mu       sync.RWMutex
	doc      *document.Document
	regions  []mask.Region
	maskChar string
	updates  int
}

// NewRenderer creates a renderer painting with maskChar.
func NewRenderer(maskChar string) *Renderer {
	if maskChar == "" {
		maskChar = DefaultMaskChar
	}
	return &Renderer{maskChar: maskChar}
}

// Set replaces the active document and its regions.
func (r *Renderer) Set(doc *document.Document, regions []mask.Region) {
	cp := make([]mask.Region, len(regions))
	copy(cp, regions)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
	r.regions = cp
	r.updates++
}

// SetMaskChar changes the paint character for subsequent Lines calls.
func (r *Renderer) SetMaskChar(maskChar string) {
	if maskChar == "" {
		maskChar = DefaultMaskChar
	}
	r.mu.Lock()
	r.maskChar = maskChar
	r.mu.Unlock()
}

// Regions returns a copy of the current region set.
func (r *Renderer) Regions() []mask.Region {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]mask.Region, len(r.regions))
	copy(out, r.regions)
	return out
}

// Document returns the active document, if any.
func (r *Renderer) Document() *document.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc
}

// Lines returns the active document with the overlay applied.
func (r *Renderer) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return nil
	}
	return Apply(r.doc.Lines, r.regions, r.maskChar)
}

// Updates counts how many times the region set was replaced.
func (r *Renderer) Updates() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updates
}
