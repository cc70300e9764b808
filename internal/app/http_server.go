package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/props"
	"github.com/frudas24/rectform/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/scene", a.handleScene)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
	mux.Handle("/", staticFileServer(staticDir))
}

type stateResponse struct {
	props.Snapshot
	Parent geom.Size `json:"parent"`
}

// handleState returns the current host inputs and parent size.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	resp := stateResponse{
		Snapshot: a.store.Snapshot(),
		Parent:   a.Scene().Parent,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleScene saves the current state to the scene file.
func (a *App) handleScene(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sc, err := a.SaveScene()
	if err != nil {
		log.Printf("scene: save failed: %v", err)
		http.Error(w, "failed to save scene", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "rect": sc.Rect})
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
