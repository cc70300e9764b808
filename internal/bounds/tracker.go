// Package bounds measures the control and its parent container.
package bounds

import (
	"errors"
	"fmt"
	"sync"

	"github.com/frudas24/rectform/internal/geom"
)

// ErrNoParent reports a control that is not attached to a parent container.
var ErrNoParent = errors.New("control has no parent container")

// Measurer reads the current viewport bounds of the control and its parent
// from the hosting layout system.
type Measurer interface {
	Measure() (geom.Bounds, error)
}

// Tracker caches the latest measurement and refreshes it on demand.
type Tracker struct {
	m    Measurer
	last geom.Bounds
}

// NewTracker performs the mount-time measurement. A missing parent is fatal.
func NewTracker(m Measurer) (*Tracker, error) {
	if m == nil {
		return nil, ErrNoParent
	}
	t := &Tracker{m: m}
	if _, err := t.Measure(); err != nil {
		return nil, err
	}
	return t, nil
}

// Measure reads fresh bounds and caches them.
func (t *Tracker) Measure() (geom.Bounds, error) {
	b, err := t.m.Measure()
	if err != nil {
		if errors.Is(err, ErrNoParent) {
			return geom.Bounds{}, err
		}
		return geom.Bounds{}, fmt.Errorf("measure bounds: %w", err)
	}
	t.last = b
	return b, nil
}

// Refresh re-measures after an external layout change.
func (t *Tracker) Refresh() error {
	_, err := t.Measure()
	return err
}

// Last returns the most recent measurement.
func (t *Tracker) Last() geom.Bounds {
	return t.last
}

// Reported is a Measurer fed by layout reports pushed from a remote host.
type Reported struct {
	mu        sync.RWMutex
	bounds    geom.Bounds
	hasParent bool
}

// NewReported returns a measurer seeded with an initial layout.
func NewReported(b geom.Bounds) *Reported {
	r := &Reported{}
	r.Report(b)
	return r
}

// Report stores the latest layout. A parent without size is treated as missing.
func (r *Reported) Report(b geom.Bounds) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.Element = geom.Normalize(b.Element)
	b.Parent = geom.Normalize(b.Parent)
	r.bounds = b
	r.hasParent = b.Parent.W > 0 && b.Parent.H > 0
}

// Measure returns the last reported layout.
func (r *Reported) Measure() (geom.Bounds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.hasParent {
		return geom.Bounds{}, ErrNoParent
	}
	return r.bounds, nil
}
