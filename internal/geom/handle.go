package geom

import "fmt"

// Handle identifies the corner grip that started a scale gesture.
type Handle int

const (
	// HandleNone marks a plain move gesture.
	HandleNone Handle = iota
	// HandleNW is the top-left grip.
	HandleNW
	// HandleNE is the top-right grip.
	HandleNE
	// HandleSW is the bottom-left grip.
	HandleSW
	// HandleSE is the bottom-right grip.
	HandleSE
)

// Handles lists the corner grips in render order.
var Handles = []Handle{HandleNW, HandleNE, HandleSW, HandleSE}

// ParseHandle maps a wire name ("nw", "ne", "sw", "se") to a Handle.
// The empty string maps to HandleNone.
func ParseHandle(s string) (Handle, error) {
	switch s {
	case "":
		return HandleNone, nil
	case "nw":
		return HandleNW, nil
	case "ne":
		return HandleNE, nil
	case "sw":
		return HandleSW, nil
	case "se":
		return HandleSE, nil
	default:
		return HandleNone, fmt.Errorf("unknown handle %q", s)
	}
}

// String returns the wire name of the handle.
func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	default:
		return ""
	}
}

// XInverted reports whether the handle sits on the left edge.
func (h Handle) XInverted() bool {
	return h == HandleNW || h == HandleSW
}

// YInverted reports whether the handle sits on the top edge.
func (h Handle) YInverted() bool {
	return h == HandleNW || h == HandleNE
}
