package control

import "github.com/frudas24/rectform/internal/geom"

// Touch is a single touch point in viewport coordinates.
type Touch struct {
	ClientX float64 `json:"clientX"`
	ClientY float64 `json:"clientY"`
}

// Message is an inbound control websocket payload.
type Message struct {
	T         string             `json:"t"`
	X         float64            `json:"x,omitempty"`
	Y         float64            `json:"y,omitempty"`
	Touches   []Touch            `json:"touches,omitempty"`
	Handle    string             `json:"handle,omitempty"`
	Element   *geom.ViewportRect `json:"element,omitempty"`
	Parent    *geom.ViewportRect `json:"parent,omitempty"`
	Rect      *geom.Rect         `json:"rect,omitempty"`
	MaxWidth  *float64           `json:"maxWidth,omitempty"`
	MaxHeight *float64           `json:"maxHeight,omitempty"`
	Disabled  *bool              `json:"disabled,omitempty"`
}

// Event is an outbound control websocket payload.
type Event struct {
	T    string     `json:"t"`
	Rect *geom.Rect `json:"rect,omitempty"`
}

// ExtractPointer normalizes mouse and touch payloads to one viewport point.
// The first touch wins; otherwise the mouse x/y is used.
func ExtractPointer(msg Message) geom.Point {
	if len(msg.Touches) > 0 {
		return geom.Point{X: msg.Touches[0].ClientX, Y: msg.Touches[0].ClientY}
	}
	return geom.Point{X: msg.X, Y: msg.Y}
}
