package testutil

import "github.com/frudas24/rectform/internal/geom"

// Recorder collects rectangles emitted through change/complete callbacks.
type Recorder struct {
	Changes   []geom.Rect
	Completes []geom.Rect
}

// OnChange records a change emission.
func (r *Recorder) OnChange(rect geom.Rect) {
	r.Changes = append(r.Changes, rect)
}

// OnComplete records a completion emission.
func (r *Recorder) OnComplete(rect geom.Rect) {
	r.Completes = append(r.Completes, rect)
}

// LastChange returns the most recent change, or the zero rect.
func (r *Recorder) LastChange() geom.Rect {
	if len(r.Changes) == 0 {
		return geom.Rect{}
	}
	return r.Changes[len(r.Changes)-1]
}
