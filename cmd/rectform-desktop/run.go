package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/frudas24/rectform/internal/config"
	"github.com/frudas24/rectform/internal/control"
	"github.com/frudas24/rectform/internal/desktop"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/imagesize"
	"github.com/frudas24/rectform/internal/props"
	"github.com/frudas24/rectform/internal/scene"
)

// run loads the scene, opens the editor window and blocks until it closes.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	control.SetDebugLogging(debug)

	sc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return err
	}
	imagePath := ""
	if sc.Image != "" {
		imagePath = sc.Image
		if !filepath.IsAbs(imagePath) {
			imagePath = filepath.Join(filepath.Dir(cfg.ScenePath), imagePath)
		}
		if seeded, err := imagesize.Seed(sc.Rect, imagePath, sc.Parent); err != nil {
			log.Printf("scene: image size unavailable: %v", err)
		} else {
			sc.Rect = seeded
		}
	}
	if cfg.MaxWidth > 0 {
		sc.MaxWidth = cfg.MaxWidth
	}
	if cfg.MaxHeight > 0 {
		sc.MaxHeight = cfg.MaxHeight
	}
	sc.Disabled = sc.Disabled || cfg.Disabled

	maxW, maxH := sc.Limits()
	store := props.New(sc.Rect, maxW, maxH)
	store.SetDisabled(sc.Disabled)

	a := fyneapp.NewWithID("io.github.frudas24.rectform")
	status := widget.NewLabel(rectLabel(sc.Rect))
	stage, err := desktop.NewStage(sc.Parent, store, func(r geom.Rect) error {
		status.SetText(rectLabel(r))
		if geom.SameGeometry(sc.Rect, r) {
			return nil
		}
		sc.Rect = r
		return scene.Save(cfg.ScenePath, sc)
	})
	if err != nil {
		return err
	}
	if imagePath != "" {
		stage.SetImage(imagePath)
	}
	release := stage.Mount()
	defer release()

	disabled := widget.NewCheck("disabled", func(on bool) {
		store.SetDisabled(on)
		sc.Disabled = on
	})
	disabled.SetChecked(sc.Disabled)

	w := a.NewWindow("rectform")
	w.SetContent(container.NewBorder(
		container.NewHBox(disabled, status),
		nil, nil, nil,
		container.NewCenter(stage),
	))
	w.Resize(fyne.NewSize(float32(sc.Parent.W)+40, float32(sc.Parent.H)+80))
	w.ShowAndRun()
	return nil
}

func rectLabel(r geom.Rect) string {
	return fmt.Sprintf("x=%.0f y=%.0f w=%.0f h=%.0f", r.X, r.Y, r.W, r.H)
}
