// Package desktop hosts the transform control inside a fyne window.
package desktop

import (
	"errors"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/frudas24/rectform/internal/bounds"
	"github.com/frudas24/rectform/internal/control"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/props"
)

var (
	stageColor  = color.NRGBA{R: 0x2b, G: 0x2d, B: 0x31, A: 0xff}
	boxFill     = color.NRGBA{R: 0x5b, G: 0x9c, B: 0xff, A: 0x26}
	accentColor = color.NRGBA{R: 0x5b, G: 0x9c, B: 0xff, A: 0xff}
)

// Stage is the parent container widget. It draws the control with its four
// grips and feeds pointer input into a control.Controller.
// Stage coordinates double as viewport coordinates, so the parent sits at the origin.
type Stage struct {
	widget.BaseWidget

	mu       sync.Mutex
	parent   geom.Size
	rect     geom.Rect
	image    string
	listener control.Listener

	store      *props.Store
	ctrl       *control.Controller
	onComplete func(geom.Rect) error
}

// NewStage creates a stage of the given parent size backed by store.
// onComplete may be nil.
func NewStage(parent geom.Size, store *props.Store, onComplete func(geom.Rect) error) (*Stage, error) {
	if store == nil {
		return nil, errors.New("props store is required")
	}
	s := &Stage{
		parent:     parent,
		rect:       store.Rect(),
		store:      store,
		onComplete: onComplete,
	}
	s.ExtendBaseWidget(s)

	tracker, err := bounds.NewTracker(stageMeasurer{s})
	if err != nil {
		return nil, err
	}
	ctrl, err := control.NewController(tracker, store, control.Callbacks{
		OnChange:   s.change,
		OnComplete: s.complete,
	})
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

// Mount subscribes the controller to stage pointer events.
// The returned func releases the subscription and drops any active gesture.
func (s *Stage) Mount() func() {
	return s.ctrl.Mount(s)
}

// Controller exposes the underlying gesture state machine.
func (s *Stage) Controller() *control.Controller {
	return s.ctrl
}

// SetImage shows the image at path stretched over the control.
func (s *Stage) SetImage(path string) {
	s.mu.Lock()
	s.image = path
	s.mu.Unlock()
	s.Refresh()
}

// Rect returns the rectangle currently drawn.
func (s *Stage) Rect() geom.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rect
}

// Subscribe implements control.EventSource.
func (s *Stage) Subscribe(l control.Listener) func() {
	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.listener = nil
		s.mu.Unlock()
	}
}

// MinSize keeps the stage at the parent size.
func (s *Stage) MinSize() fyne.Size {
	return fyne.NewSize(float32(s.parent.W), float32(s.parent.H))
}

// MouseDown starts a move or scale gesture depending on where it lands.
func (s *Stage) MouseDown(ev *fynedesktop.MouseEvent) {
	if ev.Button != fynedesktop.MouseButtonPrimary {
		return
	}
	p := toPoint(ev.Position)
	h, ok := HandleAt(s.Rect(), p, HandleSize)
	if !ok {
		return
	}
	var err error
	if h == geom.HandleNone {
		err = s.ctrl.Press(p)
	} else {
		err = s.ctrl.PressHandle(p, h)
	}
	if err != nil {
		log.Printf("desktop: press: %v", err)
	}
}

// MouseUp ends a gesture that never turned into a drag.
func (s *Stage) MouseUp(*fynedesktop.MouseEvent) {
	if l := s.currentListener(); l != nil {
		l.PointerUp()
	}
}

// Dragged forwards pointer motion to the mounted listener.
func (s *Stage) Dragged(ev *fyne.DragEvent) {
	if l := s.currentListener(); l != nil {
		l.PointerMove(toPoint(ev.Position))
	}
}

// DragEnd completes the active gesture.
func (s *Stage) DragEnd() {
	if l := s.currentListener(); l != nil {
		l.PointerUp()
	}
}

// CreateRenderer implements fyne.Widget.
func (s *Stage) CreateRenderer() fyne.WidgetRenderer {
	r := &stageRenderer{
		stage: s,
		bg:    fynecanvas.NewRectangle(stageColor),
		box:   fynecanvas.NewRectangle(boxFill),
	}
	r.box.StrokeColor = accentColor
	r.box.StrokeWidth = 1
	for i := range r.grips {
		r.grips[i] = fynecanvas.NewRectangle(accentColor)
	}
	r.Refresh()
	return r
}

func (s *Stage) currentListener() control.Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener
}

func (s *Stage) setRect(r geom.Rect) {
	s.mu.Lock()
	s.rect = r
	s.mu.Unlock()
	s.Refresh()
}

func (s *Stage) change(r geom.Rect) {
	s.store.SetRect(r)
	s.setRect(r)
}

func (s *Stage) complete(r geom.Rect) {
	s.store.SetRect(r)
	s.setRect(r)
	if s.onComplete == nil {
		return
	}
	if err := s.onComplete(r); err != nil {
		log.Printf("desktop: complete hook: %v", err)
	}
}

// stageMeasurer reports the drawn control and the stage as its parent.
type stageMeasurer struct {
	s *Stage
}

func (m stageMeasurer) Measure() (geom.Bounds, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.parent.W <= 0 || m.s.parent.H <= 0 {
		return geom.Bounds{}, bounds.ErrNoParent
	}
	r := m.s.rect
	return geom.Bounds{
		Element: geom.ViewportRect{X: r.X, Y: r.Y, W: r.W, H: r.H},
		Parent:  geom.ViewportRect{W: m.s.parent.W, H: m.s.parent.H},
	}, nil
}

type stageRenderer struct {
	stage *Stage
	bg    *fynecanvas.Rectangle
	box   *fynecanvas.Rectangle
	img   *fynecanvas.Image
	path  string
	grips [4]*fynecanvas.Rectangle
}

func (r *stageRenderer) Layout(fyne.Size) {
	s := r.stage
	s.mu.Lock()
	rect := s.rect
	parent := s.parent
	s.mu.Unlock()

	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(fyne.NewSize(float32(parent.W), float32(parent.H)))
	r.box.Move(fyne.NewPos(float32(rect.X), float32(rect.Y)))
	r.box.Resize(fyne.NewSize(float32(rect.W), float32(rect.H)))
	if r.img != nil {
		r.img.Move(r.box.Position())
		r.img.Resize(r.box.Size())
	}
	for i, h := range geom.Handles {
		hr := HandleRect(rect, h, HandleSize)
		r.grips[i].Move(fyne.NewPos(float32(hr.X), float32(hr.Y)))
		r.grips[i].Resize(fyne.NewSize(float32(hr.W), float32(hr.H)))
	}
}

func (r *stageRenderer) MinSize() fyne.Size {
	return r.stage.MinSize()
}

func (r *stageRenderer) Refresh() {
	r.stage.mu.Lock()
	path := r.stage.image
	r.stage.mu.Unlock()
	if path != r.path {
		r.path = path
		r.img = nil
		if path != "" {
			r.img = fynecanvas.NewImageFromFile(path)
			r.img.FillMode = fynecanvas.ImageFillStretch
		}
	}

	r.Layout(r.stage.Size())
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

func (r *stageRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg}
	if r.img != nil {
		objs = append(objs, r.img)
	}
	objs = append(objs, r.box)
	for _, g := range r.grips {
		objs = append(objs, g)
	}
	return objs
}

func (r *stageRenderer) Destroy() {}

func toPoint(p fyne.Position) geom.Point {
	return geom.Point{X: float64(p.X), Y: float64(p.Y)}
}
