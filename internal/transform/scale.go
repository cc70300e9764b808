package transform

import (
	"math"

	"github.com/frudas24/rectform/internal/geom"
)

// Scale resizes the control from its corner handle keeping the starting
// aspect ratio. Width drives height. The edges opposite the handle stay put,
// and the dragged edges are clamped against maxW/maxH using the paddings
// frozen at Begin. The width and height clamps run one after the other, so
// when both fire the second one wins.
func (s *Session) Scale(p geom.Point, host geom.Rect, maxW, maxH float64) geom.Rect {
	s.track(p)

	dx := s.DeltaX
	if s.XInverted {
		dx -= 2 * s.Start.W
	}

	w := s.Start.W + dx
	if s.XInverted {
		w = math.Abs(w)
	}
	h := w / s.Aspect

	x, y := s.Start.X, s.Start.Y
	if s.XInverted {
		x = s.Start.X + (s.Start.W - w)
	}
	if s.YInverted {
		y = s.Start.Y + (s.Start.H - h)
	}

	switch s.Handle {
	case geom.HandleSE:
		if w+s.Start.X >= maxW {
			w = maxW - s.Start.X
			h = w / s.Aspect
		}
		if h+s.Start.Y >= maxH {
			h = maxH - s.Start.Y
			w = h * s.Aspect
		}
	case geom.HandleSW:
		if w+s.RightPadding >= maxW {
			w = maxW - s.RightPadding
			h = w / s.Aspect
			x = 0
		}
		if h+s.Start.Y >= maxH {
			h = maxH - s.Start.Y
			w = h * s.Aspect
			x = maxW - s.RightPadding - w
		}
	case geom.HandleNE:
		if w+s.Start.X >= maxW {
			w = maxW - s.Start.X
			h = w / s.Aspect
			y = maxH - s.BottomPadding - h
		}
		if h+s.BottomPadding >= maxH {
			h = maxH - s.BottomPadding
			w = h * s.Aspect
			y = 0
		}
	case geom.HandleNW:
		if x <= 0 {
			x = 0
			w = maxW - s.RightPadding
			h = w / s.Aspect
			y = maxH - h - s.BottomPadding
		}
		if y <= 0 {
			y = 0
			h = maxH - s.BottomPadding
			w = h * s.Aspect
			x = maxW - w - s.RightPadding
		}
	case geom.HandleNone:
		// Plain moves have no anchor corner.
		return s.Translate(p, host)
	}

	if w < 0 || h < 0 {
		// Collapsed through the anchor: pin to the fixed corner.
		w, h = 0, 0
		x, y = s.Start.X, s.Start.Y
		if s.XInverted {
			x = s.Start.Right()
		}
		if s.YInverted {
			y = s.Start.Bottom()
		}
	}

	out := host
	out.X, out.Y, out.W, out.H = x, y, w, h
	return out
}
