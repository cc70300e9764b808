package desktop

import "github.com/frudas24/rectform/internal/geom"

// HandleSize is the side length of a corner grip in pixels.
const HandleSize = 10

// HandleRect returns the square hit area of a corner grip centered on its corner.
func HandleRect(r geom.Rect, h geom.Handle, size float64) geom.ViewportRect {
	x, y := r.Right(), r.Bottom()
	if h.XInverted() {
		x = r.X
	}
	if h.YInverted() {
		y = r.Y
	}
	half := size / 2
	return geom.ViewportRect{X: x - half, Y: y - half, W: size, H: size}
}

// HandleAt resolves which part of the control a press landed on.
// Grips win over the body; ok is false when p misses the control entirely.
func HandleAt(r geom.Rect, p geom.Point, size float64) (geom.Handle, bool) {
	for _, grip := range geom.Handles {
		if geom.Contains(HandleRect(r, grip, size), p) {
			return grip, true
		}
	}
	body := geom.ViewportRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	if geom.Contains(body, p) {
		return geom.HandleNone, true
	}
	return geom.HandleNone, false
}
