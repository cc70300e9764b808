// Package testutil holds test doubles shared across packages.
package testutil

import "github.com/frudas24/rectform/internal/geom"

// FakeMeasurer satisfies bounds.Measurer and counts reads.
type FakeMeasurer struct {
	Bounds geom.Bounds
	Err    error
	Calls  int
}

// Measure returns the configured bounds or error.
func (f *FakeMeasurer) Measure() (geom.Bounds, error) {
	f.Calls++
	if f.Err != nil {
		return geom.Bounds{}, f.Err
	}
	return f.Bounds, nil
}

// Place sets the measured control to rect r inside a parent at (px,py) sized pw x ph.
func (f *FakeMeasurer) Place(r geom.Rect, px, py, pw, ph float64) {
	f.Bounds = geom.Bounds{
		Element: geom.ViewportRect{X: px + r.X, Y: py + r.Y, W: r.W, H: r.H},
		Parent:  geom.ViewportRect{X: px, Y: py, W: pw, H: ph},
	}
}
