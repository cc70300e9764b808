// Package geom defines the value types shared by the transform engine and its hosts.
package geom

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the tolerance used when comparing computed geometry.
const Epsilon = 1e-9

// Point is a pointer position in viewport pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair in pixels.
type Size struct {
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Rect is the control placement in parent-relative pixels.
// Rotation is a display attribute carried through untouched.
type Rect struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	W        float64 `json:"w" yaml:"w"`
	H        float64 `json:"h" yaml:"h"`
	Rotation float64 `json:"deg" yaml:"deg"`
}

// ViewportRect is a measured rectangle in viewport pixels.
type ViewportRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Bounds pairs the measured control rectangle with its parent's.
type Bounds struct {
	Element ViewportRect
	Parent  ViewportRect
}

// ElementInParent converts the measured control rectangle into parent-relative space.
func (b Bounds) ElementInParent() Rect {
	return Rect{
		X: b.Element.X - b.Parent.X,
		Y: b.Element.Y - b.Parent.Y,
		W: b.Element.W,
		H: b.Element.H,
	}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r ViewportRect) ViewportRect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether a point is inside the rectangle (edges inclusive).
func Contains(r ViewportRect, p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Clamp bounds v to [lo, hi]. The upper bound is applied first, so an empty
// range (hi < lo) pins the result at lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// NearlyEqual compares two computed values within Epsilon.
func NearlyEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, Epsilon)
}

// SameGeometry reports whether two rectangles share placement and size.
func SameGeometry(a, b Rect) bool {
	return NearlyEqual(a.X, b.X) && NearlyEqual(a.Y, b.Y) &&
		NearlyEqual(a.W, b.W) && NearlyEqual(a.H, b.H)
}
