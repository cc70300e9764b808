package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/rectform/internal/app"
	"github.com/frudas24/rectform/internal/bounds"
	"github.com/frudas24/rectform/internal/config"
	"github.com/frudas24/rectform/internal/control"
	"github.com/frudas24/rectform/internal/geom"
	"github.com/frudas24/rectform/internal/props"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	control.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	store := props.New(geom.Rect{}, cfg.MaxWidth, cfg.MaxHeight)
	layout := bounds.NewReported(geom.Bounds{})

	appInstance, err := app.New(cfg, store, layout)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	sc := appInstance.Scene()
	log.Printf("scene: parent=%vx%v rect=%+v", sc.Parent.W, sc.Parent.H, sc.Rect)

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, cfg.StaticDir)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("rectform starting")
	logEnvStatus(cfg)
	if fileExists(cfg.ScenePath) {
		log.Printf("scene check: ok (%s)", cfg.ScenePath)
	} else {
		log.Printf("scene check: missing, using defaults (%s)", cfg.ScenePath)
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.Disabled {
		log.Printf("env DISABLED: set, gestures are suppressed")
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
