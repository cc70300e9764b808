// Package transform turns pointer gestures into clamped control rectangles.
package transform

import "github.com/frudas24/rectform/internal/geom"

// Session is the state of one gesture. Everything except the delta is
// captured by Begin and never changes afterwards.
type Session struct {
	StartPointer  geom.Point
	Start         geom.Rect
	Parent        geom.Size
	RightPadding  float64
	BottomPadding float64
	Aspect        float64
	Handle        geom.Handle
	Scaling       bool
	XInverted     bool
	YInverted     bool

	DeltaX float64
	DeltaY float64
}

// Begin snapshots a gesture starting at pointer p. Bounds must be freshly
// measured; maxW/maxH are the outer containment limits. HandleNone starts a
// plain move.
func Begin(p geom.Point, b geom.Bounds, maxW, maxH float64, h geom.Handle) *Session {
	start := b.ElementInParent()
	return &Session{
		StartPointer:  p,
		Start:         start,
		Parent:        geom.Size{W: b.Parent.W, H: b.Parent.H},
		RightPadding:  maxW - start.W - start.X,
		BottomPadding: maxH - start.H - start.Y,
		Aspect:        aspectOf(start),
		Handle:        h,
		Scaling:       h != geom.HandleNone,
		XInverted:     h.XInverted(),
		YInverted:     h.YInverted(),
	}
}

// track records the pointer displacement since the gesture started.
func (s *Session) track(p geom.Point) {
	s.DeltaX = p.X - s.StartPointer.X
	s.DeltaY = p.Y - s.StartPointer.Y
}

// Apply dispatches to Scale or Translate depending on the gesture kind.
func (s *Session) Apply(p geom.Point, host geom.Rect, maxW, maxH float64) geom.Rect {
	if s.Scaling {
		return s.Scale(p, host, maxW, maxH)
	}
	return s.Translate(p, host)
}

// aspectOf returns w/h, falling back to 1 for empty rectangles.
func aspectOf(r geom.Rect) float64 {
	if r.W <= 0 || r.H <= 0 {
		return 1
	}
	return r.W / r.H
}
