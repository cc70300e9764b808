// Package scene persists the control layout as YAML.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/frudas24/rectform/internal/geom"
)

// Default parent size used when a scene file does not exist yet.
const (
	DefaultParentW = 800
	DefaultParentH = 600
)

// Scene describes the parent container, the control and its limits.
type Scene struct {
	Parent    geom.Size `yaml:"parent"`
	Rect      geom.Rect `yaml:"rect"`
	MaxWidth  float64   `yaml:"maxWidth,omitempty"`
	MaxHeight float64   `yaml:"maxHeight,omitempty"`
	Disabled  bool      `yaml:"disabled,omitempty"`
	Image     string    `yaml:"image,omitempty"`
}

// Default returns a centered 200x150 control in the default parent.
func Default() Scene {
	return Scene{
		Parent: geom.Size{W: DefaultParentW, H: DefaultParentH},
		Rect:   geom.Rect{X: 300, Y: 225, W: 200, H: 150},
	}
}

// Limits returns the containment bounds, falling back to the parent size.
func (s Scene) Limits() (float64, float64) {
	w, h := s.MaxWidth, s.MaxHeight
	if w <= 0 {
		w = s.Parent.W
	}
	if h <= 0 {
		h = s.Parent.H
	}
	return w, h
}

// Layout returns viewport bounds with the parent at the origin.
func (s Scene) Layout() geom.Bounds {
	return geom.Bounds{
		Element: geom.ViewportRect{X: s.Rect.X, Y: s.Rect.Y, W: s.Rect.W, H: s.Rect.H},
		Parent:  geom.ViewportRect{W: s.Parent.W, H: s.Parent.H},
	}
}

// Load reads a scene from disk. Missing files return Default.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Scene{}, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Parent.W <= 0 || s.Parent.H <= 0 {
		return Scene{}, fmt.Errorf("parse %s: parent size must be positive", path)
	}
	return s, nil
}

// Save writes the scene to disk, creating parent directories as needed.
func Save(path string, s Scene) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
