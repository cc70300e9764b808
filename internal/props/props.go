// Package props holds the host-owned inputs of a transform control.
package props

import (
	"sync"

	"github.com/frudas24/rectform/internal/geom"
)

// Snapshot is a read-only copy of the control inputs.
type Snapshot struct {
	Rect      geom.Rect `json:"rect"`
	MaxWidth  float64   `json:"maxWidth"`
	MaxHeight float64   `json:"maxHeight"`
	Disabled  bool      `json:"disabled"`
}

// Store is the authoritative source of the control rectangle and limits.
type Store struct {
	mu        sync.RWMutex
	rect      geom.Rect
	maxWidth  float64
	maxHeight float64
	disabled  bool
}

// New returns a store with the given rectangle and containment limits.
func New(rect geom.Rect, maxWidth, maxHeight float64) *Store {
	return &Store{
		rect:      rect,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}
}

// SetRect replaces the current rectangle.
func (s *Store) SetRect(r geom.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rect = r
}

// Rect returns the current rectangle.
func (s *Store) Rect() geom.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rect
}

// SetLimits sets the outer containment bounds.
func (s *Store) SetLimits(maxWidth, maxHeight float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxWidth = maxWidth
	s.maxHeight = maxHeight
}

// Limits returns the outer containment bounds.
func (s *Store) Limits() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxWidth, s.maxHeight
}

// SetDisabled toggles whether the control accepts gestures.
func (s *Store) SetDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled = disabled
}

// Disabled reports whether gestures are suppressed.
func (s *Store) Disabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disabled
}

// Snapshot returns a copy of the current inputs.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Rect:      s.rect,
		MaxWidth:  s.maxWidth,
		MaxHeight: s.maxHeight,
		Disabled:  s.disabled,
	}
}
