// Package config loads environment configuration for rectform.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr = "0.0.0.0:8790"
	defaultDataDir    = "./data"
	defaultSceneFile  = "scene.yaml"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr string
	DataDir    string
	ScenePath  string
	StaticDir  string
	MaxWidth   float64
	MaxHeight  float64
	Disabled   bool
}

// Load reads configuration from <DATA_DIR>/.env and environment variables.
// DATA_DIR itself only comes from the environment.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr: defaultListenAddr,
		DataDir:    defaultDataDir,
	}

	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.ScenePath = envString("SCENE_PATH", filepath.Join(cfg.DataDir, defaultSceneFile))
	cfg.StaticDir = envString("STATIC_DIR", "")
	cfg.Disabled = envBool("DISABLED", false)

	maxWidth, err := envFloat("MAX_WIDTH", 0)
	if err != nil {
		return Config{}, err
	}
	if maxWidth < 0 {
		return Config{}, errors.New("MAX_WIDTH must be >= 0")
	}
	cfg.MaxWidth = maxWidth

	maxHeight, err := envFloat("MAX_HEIGHT", 0)
	if err != nil {
		return Config{}, err
	}
	if maxHeight < 0 {
		return Config{}, errors.New("MAX_HEIGHT must be >= 0")
	}
	cfg.MaxHeight = maxHeight

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding
// variables that are already set.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
