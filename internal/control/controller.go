package control

import (
	"errors"
	"sync"

	"github.com/frudas24/rectform/internal/bounds"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/transform"
)

// State is the gesture phase of a Controller.
type State int

const (
	// StateIdle has no active gesture.
	StateIdle State = iota
	// StateDragging translates the control.
	StateDragging
	// StateScaling resizes the control from a corner handle.
	StateScaling
)

// String returns a log-friendly state name.
func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateScaling:
		return "scaling"
	default:
		return "idle"
	}
}

// Props supplies the host-owned inputs, read on every event.
type Props interface {
	Rect() geom.Rect
	Limits() (maxWidth, maxHeight float64)
	Disabled() bool
}

// Callbacks receive the rectangles computed by a Controller.
type Callbacks struct {
	// OnChange is called on every processed move.
	OnChange func(geom.Rect)
	// OnComplete is called once when a gesture ends. Optional.
	OnComplete func(geom.Rect)
}

// Listener receives global pointer events while a control is mounted.
type Listener interface {
	PointerMove(p geom.Point)
	PointerUp()
	PointerCancel()
}

// EventSource delivers global pointer events. Subscribe returns the function
// that removes the listener again.
type EventSource interface {
	Subscribe(l Listener) (unsubscribe func())
}

// Controller runs the Idle -> Dragging|Scaling -> Idle gesture machine.
// It is not safe for concurrent use; hosts feed it from one goroutine.
type Controller struct {
	tracker *bounds.Tracker
	props   Props
	cb      Callbacks

	state   State
	session *transform.Session
	last    geom.Rect
	moved   bool

	release func()
}

// NewController wires a controller to its measured bounds and host inputs.
func NewController(tracker *bounds.Tracker, p Props, cb Callbacks) (*Controller, error) {
	if tracker == nil {
		return nil, bounds.ErrNoParent
	}
	if p == nil {
		return nil, errors.New("props are required")
	}
	if cb.OnChange == nil {
		return nil, errors.New("change callback is required")
	}
	return &Controller{tracker: tracker, props: p, cb: cb}, nil
}

// State returns the current gesture phase.
func (c *Controller) State() State {
	return c.state
}

// Session returns the active gesture session, or nil when idle.
func (c *Controller) Session() *transform.Session {
	return c.session
}

// Press starts a move gesture at p.
func (c *Controller) Press(p geom.Point) error {
	return c.begin(p, geom.HandleNone)
}

// PressHandle starts a scale gesture from corner h at p.
func (c *Controller) PressHandle(p geom.Point, h geom.Handle) error {
	return c.begin(p, h)
}

// begin measures fresh bounds and replaces any active session.
func (c *Controller) begin(p geom.Point, h geom.Handle) error {
	if c.props.Disabled() {
		return nil
	}
	b, err := c.tracker.Measure()
	if err != nil {
		return err
	}
	if c.session != nil {
		debugf("press while %s, replacing session", c.state)
	}
	maxW, maxH := c.props.Limits()
	c.session = transform.Begin(p, b, maxW, maxH, h)
	c.moved = false
	c.state = StateDragging
	if c.session.Scaling {
		c.state = StateScaling
	}
	debugf("begin %s handle=%q start=%+v", c.state, h, c.session.Start)
	return nil
}

// Move recomputes the rectangle for pointer p and reports it through OnChange.
func (c *Controller) Move(p geom.Point) {
	if c.session == nil || c.props.Disabled() {
		return
	}
	maxW, maxH := c.props.Limits()
	c.last = c.session.Apply(p, c.props.Rect(), maxW, maxH)
	c.moved = true
	c.cb.OnChange(c.last)
}

// Release ends the gesture, reporting the final rectangle through OnComplete.
func (c *Controller) Release() {
	c.finish("release")
}

// Cancel ends the gesture the same way Release does.
func (c *Controller) Cancel() {
	c.finish("cancel")
}

// finish emits the final rectangle when allowed and returns to idle.
func (c *Controller) finish(reason string) {
	if c.session == nil {
		return
	}
	if c.cb.OnComplete != nil && !c.props.Disabled() {
		final := c.last
		if !c.moved {
			maxW, maxH := c.props.Limits()
			final = c.session.Apply(c.session.StartPointer, c.props.Rect(), maxW, maxH)
		}
		c.cb.OnComplete(final)
	}
	debugf("%s after %s", reason, c.state)
	c.discard()
}

// discard drops the session without emitting anything.
func (c *Controller) discard() {
	c.session = nil
	c.moved = false
	c.state = StateIdle
}

// Refresh re-measures bounds after an external layout change.
func (c *Controller) Refresh() error {
	if c.props.Disabled() {
		return nil
	}
	return c.tracker.Refresh()
}

// Mount subscribes the controller to src. The returned function unsubscribes
// and drops any active gesture; it is safe to call more than once.
func (c *Controller) Mount(src EventSource) func() {
	if c.release != nil {
		c.release()
	}
	unsubscribe := src.Subscribe(c)
	var once sync.Once
	c.release = func() {
		once.Do(func() {
			unsubscribe()
			c.discard()
		})
	}
	return c.release
}

// Unmount releases the current subscription, if any.
func (c *Controller) Unmount() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// PointerMove implements Listener.
func (c *Controller) PointerMove(p geom.Point) { c.Move(p) }

// PointerUp implements Listener.
func (c *Controller) PointerUp() { c.Release() }

// PointerCancel implements Listener.
func (c *Controller) PointerCancel() { c.Cancel() }
