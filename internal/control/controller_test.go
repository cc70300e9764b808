package control

import (
	"errors"
	"testing"

	"github.com/frudas24/rectform/internal/bounds"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/props"
	"github.com/frudas24/rectform/internal/testutil"
)

var startRect = geom.Rect{X: 10, Y: 10, W: 100, H: 50}

// newTestController returns a controller for a 100x50 control at (10,10) in a 400x300 parent.
func newTestController(t *testing.T) (*Controller, *testutil.FakeMeasurer, *props.Store, *testutil.Recorder) {
	t.Helper()
	m := &testutil.FakeMeasurer{}
	m.Place(startRect, 100, 60, 400, 300)
	tr, err := bounds.NewTracker(m)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	store := props.New(startRect, 400, 300)
	rec := &testutil.Recorder{}
	ctrl, err := NewController(tr, store, Callbacks{OnChange: rec.OnChange, OnComplete: rec.OnComplete})
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	return ctrl, m, store, rec
}

// TestNewController_RequiresTrackerAndChange verifies construction fails loudly.
func TestNewController_RequiresTrackerAndChange(t *testing.T) {
	store := props.New(startRect, 400, 300)
	if _, err := NewController(nil, store, Callbacks{OnChange: func(geom.Rect) {}}); !errors.Is(err, bounds.ErrNoParent) {
		t.Fatalf("expected ErrNoParent, got %v", err)
	}

	m := &testutil.FakeMeasurer{}
	m.Place(startRect, 0, 0, 400, 300)
	tr, err := bounds.NewTracker(m)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	if _, err := NewController(tr, store, Callbacks{}); err == nil {
		t.Fatalf("expected error without OnChange")
	}
}

// TestController_DragEmitsClampedTranslation verifies press+move translates within the parent.
func TestController_DragEmitsClampedTranslation(t *testing.T) {
	ctrl, _, _, rec := newTestController(t)

	if err := ctrl.Press(geom.Point{X: 200, Y: 200}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	if ctrl.State() != StateDragging {
		t.Fatalf("expected dragging, got %v", ctrl.State())
	}
	ctrl.Move(geom.Point{X: 250, Y: 200})
	ctrl.Move(geom.Point{X: 5000, Y: -5000})

	if len(rec.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(rec.Changes))
	}
	if got := rec.Changes[0]; got.X != 60 || got.Y != 10 || got.W != 100 {
		t.Fatalf("unexpected first change %+v", got)
	}
	if got := rec.Changes[1]; got.X != 300 || got.Y != 0 {
		t.Fatalf("expected clamp to (300,0), got %+v", got)
	}

	ctrl.Release()
	if ctrl.State() != StateIdle || ctrl.Session() != nil {
		t.Fatalf("expected idle after release")
	}
	if len(rec.Completes) != 1 || rec.Completes[0] != rec.Changes[1] {
		t.Fatalf("expected completion with last change, got %#v", rec.Completes)
	}
}

// TestController_ScaleCompletesWithScaledRect verifies release reports the scaled geometry.
func TestController_ScaleCompletesWithScaledRect(t *testing.T) {
	ctrl, _, _, rec := newTestController(t)

	if err := ctrl.PressHandle(geom.Point{X: 210, Y: 120}, geom.HandleSE); err != nil {
		t.Fatalf("PressHandle failed: %v", err)
	}
	if ctrl.State() != StateScaling {
		t.Fatalf("expected scaling, got %v", ctrl.State())
	}
	ctrl.Move(geom.Point{X: 260, Y: 120})
	ctrl.Release()

	want := geom.Rect{X: 10, Y: 10, W: 150, H: 75}
	if len(rec.Completes) != 1 || rec.Completes[0] != want {
		t.Fatalf("expected completion %+v, got %#v", want, rec.Completes)
	}
}

// TestController_ReleaseWithoutMove verifies completion reports the start geometry.
func TestController_ReleaseWithoutMove(t *testing.T) {
	ctrl, _, _, rec := newTestController(t)

	if err := ctrl.PressHandle(geom.Point{X: 5, Y: 5}, geom.HandleNW); err != nil {
		t.Fatalf("PressHandle failed: %v", err)
	}
	ctrl.Cancel()

	if len(rec.Changes) != 0 {
		t.Fatalf("expected no changes, got %#v", rec.Changes)
	}
	if len(rec.Completes) != 1 || rec.Completes[0] != startRect {
		t.Fatalf("expected completion %+v, got %#v", startRect, rec.Completes)
	}
}

// TestController_DisabledSuppressesEverything verifies no session, measurement or callback while disabled.
func TestController_DisabledSuppressesEverything(t *testing.T) {
	ctrl, m, store, rec := newTestController(t)
	store.SetDisabled(true)

	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	if err := ctrl.PressHandle(geom.Point{}, geom.HandleSE); err != nil {
		t.Fatalf("PressHandle failed: %v", err)
	}
	ctrl.Move(geom.Point{X: 10})
	ctrl.Release()
	if err := ctrl.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if ctrl.Session() != nil || ctrl.State() != StateIdle {
		t.Fatalf("expected no session while disabled")
	}
	if m.Calls != 1 {
		t.Fatalf("expected only the mount measurement, got %d", m.Calls)
	}
	if len(rec.Changes) != 0 || len(rec.Completes) != 0 {
		t.Fatalf("expected no callbacks, got %#v", rec)
	}
}

// TestController_DisabledMidGesture verifies disabling stops moves and completion.
func TestController_DisabledMidGesture(t *testing.T) {
	ctrl, _, store, rec := newTestController(t)

	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	store.SetDisabled(true)
	ctrl.Move(geom.Point{X: 10})
	ctrl.Release()

	if len(rec.Changes) != 0 || len(rec.Completes) != 0 {
		t.Fatalf("expected no callbacks, got %#v", rec)
	}
	if ctrl.State() != StateIdle {
		t.Fatalf("expected idle after release")
	}
}

// TestController_SecondPressReplacesSession verifies only the latest gesture is tracked.
func TestController_SecondPressReplacesSession(t *testing.T) {
	ctrl, _, _, _ := newTestController(t)

	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	first := ctrl.Session()
	if err := ctrl.PressHandle(geom.Point{X: 5, Y: 5}, geom.HandleSE); err != nil {
		t.Fatalf("PressHandle failed: %v", err)
	}
	if ctrl.Session() == first || ctrl.Session().Handle != geom.HandleSE || ctrl.State() != StateScaling {
		t.Fatalf("expected replaced scale session, got %+v", ctrl.Session())
	}
}

// TestController_MoveWhileIdleIgnored verifies stray moves emit nothing.
func TestController_MoveWhileIdleIgnored(t *testing.T) {
	ctrl, _, _, rec := newTestController(t)
	ctrl.Move(geom.Point{X: 10, Y: 10})
	ctrl.Release()
	if len(rec.Changes) != 0 || len(rec.Completes) != 0 {
		t.Fatalf("expected no callbacks, got %#v", rec)
	}
}

// TestController_PressUsesFreshBounds verifies layout changes between gestures are picked up.
func TestController_PressUsesFreshBounds(t *testing.T) {
	ctrl, m, _, _ := newTestController(t)

	m.Place(geom.Rect{X: 40, Y: 30, W: 100, H: 50}, 100, 60, 400, 300)
	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	if got := ctrl.Session().Start; got.X != 40 || got.Y != 30 {
		t.Fatalf("expected start at (40,30), got %+v", got)
	}
}

// TestController_PressMeasureError verifies measurement failures abort the press.
func TestController_PressMeasureError(t *testing.T) {
	ctrl, m, _, _ := newTestController(t)
	m.Err = bounds.ErrNoParent

	if err := ctrl.Press(geom.Point{}); !errors.Is(err, bounds.ErrNoParent) {
		t.Fatalf("expected ErrNoParent, got %v", err)
	}
	if ctrl.Session() != nil {
		t.Fatalf("expected no session after failed press")
	}
}

// TestController_WithoutOnComplete verifies release works without a completion callback.
func TestController_WithoutOnComplete(t *testing.T) {
	m := &testutil.FakeMeasurer{}
	m.Place(startRect, 0, 0, 400, 300)
	tr, err := bounds.NewTracker(m)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	rec := &testutil.Recorder{}
	ctrl, err := NewController(tr, props.New(startRect, 400, 300), Callbacks{OnChange: rec.OnChange})
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	ctrl.Release()
	if ctrl.State() != StateIdle {
		t.Fatalf("expected idle")
	}
}

// fakeSource is an EventSource that records subscriptions.
type fakeSource struct {
	l            Listener
	unsubscribed int
}

func (f *fakeSource) Subscribe(l Listener) func() {
	f.l = l
	return func() {
		f.unsubscribed++
		f.l = nil
	}
}

// TestController_MountRoutesGlobalEvents verifies moves and releases arrive through the source.
func TestController_MountRoutesGlobalEvents(t *testing.T) {
	ctrl, _, _, rec := newTestController(t)
	src := &fakeSource{}
	release := ctrl.Mount(src)
	defer release()

	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	src.l.PointerMove(geom.Point{X: 20, Y: 0})
	src.l.PointerUp()

	if len(rec.Changes) != 1 || rec.Changes[0].X != 30 {
		t.Fatalf("unexpected changes %#v", rec.Changes)
	}
	if len(rec.Completes) != 1 {
		t.Fatalf("expected one completion, got %#v", rec.Completes)
	}
}

// TestController_ReleaseDropsGestureOnce verifies teardown unsubscribes once and discards the session.
func TestController_ReleaseDropsGestureOnce(t *testing.T) {
	ctrl, _, _, rec := newTestController(t)
	src := &fakeSource{}
	release := ctrl.Mount(src)

	if err := ctrl.Press(geom.Point{}); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	release()
	release()
	ctrl.Unmount()

	if src.unsubscribed != 1 || src.l != nil {
		t.Fatalf("expected a single unsubscribe, got %d", src.unsubscribed)
	}
	if ctrl.Session() != nil || ctrl.State() != StateIdle {
		t.Fatalf("expected session discarded on teardown")
	}
	if len(rec.Completes) != 0 {
		t.Fatalf("teardown must not complete, got %#v", rec.Completes)
	}
}
