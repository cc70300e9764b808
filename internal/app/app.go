// Package app wires configuration, the scene file and the control bridge together.
package app

import (
	"errors"
	"log"
	"path/filepath"
	"sync"

	"github.com/frudas24/rectform/internal/bounds"
	"github.com/frudas24/rectform/internal/config"
	"github.com/frudas24/rectform/internal/control"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/imagesize"
	"github.com/frudas24/rectform/internal/props"
	"github.com/frudas24/rectform/internal/scene"
)

// App coordinates the HTTP API, the control websocket and scene persistence.
type App struct {
	mu      sync.Mutex
	cfg     config.Config
	store   *props.Store
	layout  *bounds.Reported
	control *control.Server
	scene   scene.Scene
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, store *props.Store, layout *bounds.Reported) (*App, error) {
	if store == nil {
		return nil, errors.New("props store is required")
	}
	if layout == nil {
		return nil, errors.New("layout measurer is required")
	}

	app := &App{
		cfg:    cfg,
		store:  store,
		layout: layout,
		scene:  scene.Default(),
	}
	app.control = control.NewServer(store, layout, app.saveRect)
	return app, nil
}

// Start loads the scene and seeds the host inputs from it.
func (a *App) Start() error {
	sc, err := scene.Load(a.cfg.ScenePath)
	if err != nil {
		return err
	}

	if sc.Image != "" {
		path := sc.Image
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(a.cfg.ScenePath), path)
		}
		seeded, err := imagesize.Seed(sc.Rect, path, sc.Parent)
		if err != nil {
			log.Printf("scene: image size unavailable: %v", err)
		} else {
			sc.Rect = seeded
		}
	}
	if a.cfg.MaxWidth > 0 {
		sc.MaxWidth = a.cfg.MaxWidth
	}
	if a.cfg.MaxHeight > 0 {
		sc.MaxHeight = a.cfg.MaxHeight
	}
	if a.cfg.Disabled {
		sc.Disabled = true
	}

	a.mu.Lock()
	a.scene = sc
	a.mu.Unlock()

	maxW, maxH := sc.Limits()
	a.store.SetRect(sc.Rect)
	a.store.SetLimits(maxW, maxH)
	a.store.SetDisabled(sc.Disabled)
	a.layout.Report(sc.Layout())
	return nil
}

// saveRect persists a completed gesture when the geometry changed.
func (a *App) saveRect(r geom.Rect) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if geom.SameGeometry(a.scene.Rect, r) {
		return nil
	}
	a.scene.Rect = r
	return scene.Save(a.cfg.ScenePath, a.scene)
}

// SaveScene writes the current host inputs back to the scene file.
func (a *App) SaveScene() (scene.Scene, error) {
	snap := a.store.Snapshot()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene.Rect = snap.Rect
	a.scene.MaxWidth = snap.MaxWidth
	a.scene.MaxHeight = snap.MaxHeight
	a.scene.Disabled = snap.Disabled
	return a.scene, scene.Save(a.cfg.ScenePath, a.scene)
}

// Scene returns a copy of the loaded scene.
func (a *App) Scene() scene.Scene {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
