package control

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/frudas24/rectform/internal/bounds"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/props"
)

// Server bridges a browser host to a Controller over a websocket.
// The server owns the rectangle: every change is written to the props store.
type Server struct {
	mu         sync.Mutex
	writeMu    sync.Mutex
	upgrader   websocket.Upgrader
	store      *props.Store
	layout     *bounds.Reported
	onComplete func(geom.Rect) error
	conn       *websocket.Conn
}

// NewServer creates a control websocket server. onComplete may be nil.
func NewServer(store *props.Store, layout *bounds.Reported, onComplete func(geom.Rect) error) *Server {
	return &Server{
		store:      store,
		layout:     layout,
		onComplete: onComplete,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		rejectConn(conn, err.Error())
		return
	}
	defer s.cleanupConn(conn)

	ctrl, err := s.newController(conn)
	if err != nil {
		log.Printf("control: %v", err)
		rejectConn(conn, err.Error())
		return
	}
	src := &connSource{}
	release := ctrl.Mount(src)
	defer release()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.handleMessage(ctrl, src, msg); err != nil {
			log.Printf("control: %v", err)
			return
		}
	}
}

// newController builds a controller whose callbacks write back to conn.
func (s *Server) newController(conn *websocket.Conn) (*Controller, error) {
	tracker, err := bounds.NewTracker(s.layout)
	if err != nil {
		return nil, err
	}
	return NewController(tracker, s.store, Callbacks{
		OnChange: func(r geom.Rect) {
			s.store.SetRect(r)
			_ = s.sendTo(conn, Event{T: "change", Rect: &r})
		},
		OnComplete: func(r geom.Rect) {
			s.store.SetRect(r)
			_ = s.sendTo(conn, Event{T: "complete", Rect: &r})
			if s.onComplete != nil {
				if err := s.onComplete(r); err != nil {
					log.Printf("control: complete hook: %v", err)
				}
			}
		},
	})
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// rejectConn sends a policy violation close and closes the socket.
func rejectConn(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(1*time.Second))
	_ = conn.Close()
}

// handleMessage dispatches a single control message.
func (s *Server) handleMessage(ctrl *Controller, src *connSource, msg Message) error {
	switch msg.T {
	case "down":
		return s.handlePointerDown(ctrl, msg)
	case "move":
		src.move(ExtractPointer(msg))
		return nil
	case "up":
		src.up()
		return nil
	case "cancel":
		src.cancel()
		return nil
	case "layout":
		return s.handleLayout(ctrl, msg)
	case "props":
		s.handleProps(msg)
		return nil
	default:
		return nil
	}
}

// handlePointerDown starts a move or scale gesture.
func (s *Server) handlePointerDown(ctrl *Controller, msg Message) error {
	h, err := geom.ParseHandle(msg.Handle)
	if err != nil {
		debugf("ignoring press: %v", err)
		return nil
	}
	p := ExtractPointer(msg)
	if h == geom.HandleNone {
		return ctrl.Press(p)
	}
	return ctrl.PressHandle(p, h)
}

// handleLayout stores a layout report and re-measures. Reports are dropped
// while the control is disabled.
func (s *Server) handleLayout(ctrl *Controller, msg Message) error {
	if msg.Element == nil || msg.Parent == nil || s.store.Disabled() {
		return nil
	}
	s.layout.Report(geom.Bounds{Element: *msg.Element, Parent: *msg.Parent})
	return ctrl.Refresh()
}

// handleProps applies host input updates.
func (s *Server) handleProps(msg Message) {
	if msg.Rect != nil {
		s.store.SetRect(*msg.Rect)
	}
	if msg.MaxWidth != nil || msg.MaxHeight != nil {
		w, h := s.store.Limits()
		if msg.MaxWidth != nil {
			w = *msg.MaxWidth
		}
		if msg.MaxHeight != nil {
			h = *msg.MaxHeight
		}
		s.store.SetLimits(w, h)
	}
	if msg.Disabled != nil {
		s.store.SetDisabled(*msg.Disabled)
	}
}

// sendTo writes an event to the active connection.
func (s *Server) sendTo(conn *websocket.Conn, ev Event) error {
	s.mu.Lock()
	active := s.conn
	s.mu.Unlock()
	if active != conn {
		return fmt.Errorf("connection not active")
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(ev)
}

// connSource forwards move/up/cancel messages of one connection to the
// mounted listener.
type connSource struct {
	l Listener
}

// Subscribe implements EventSource.
func (c *connSource) Subscribe(l Listener) func() {
	c.l = l
	return func() { c.l = nil }
}

func (c *connSource) move(p geom.Point) {
	if c.l != nil {
		c.l.PointerMove(p)
	}
}

func (c *connSource) up() {
	if c.l != nil {
		c.l.PointerUp()
	}
}

func (c *connSource) cancel() {
	if c.l != nil {
		c.l.PointerCancel()
	}
}
