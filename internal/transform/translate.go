package transform

import "github.com/frudas24/rectform/internal/geom"

// Translate moves the control with the pointer, keeping it inside the parent.
// Size and rotation come from host; a control larger than its parent pins at 0.
func (s *Session) Translate(p geom.Point, host geom.Rect) geom.Rect {
	s.track(p)
	out := host
	out.X = geom.Clamp(s.Start.X+s.DeltaX, 0, s.Parent.W-s.Start.W)
	out.Y = geom.Clamp(s.Start.Y+s.DeltaY, 0, s.Parent.H-s.Start.H)
	return out
}
