// Package config loads environment configuration for edgewrap.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/frudas24/edgewrap/internal/topology"
)

const (
	defaultListenAddr        = "127.0.0.1:8788"
	defaultDataDir           = "./data"
	defaultPollIntervalMs    = 8
	defaultDisplayPollMs     = 2000
	defaultDiagnostics       = true
	defaultWrapEnabled       = true
	defaultAlgorithm         = "projection"
	minPollIntervalMs        = 1
	minDisplayPollIntervalMs = 100
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr         string
	DataDir            string
	LayoutPath         string
	WrapMode           topology.WrapMode
	Algorithm          string
	PollIntervalMs     int
	DisplayPollMs      int
	DiagnosticsEnabled bool
	WrapEnabled        bool
}

// Load reads configuration from <DATA_DIR>/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:         defaultListenAddr,
		DataDir:            envString("DATA_DIR", defaultDataDir),
		WrapMode:           topology.WrapBoth,
		Algorithm:          defaultAlgorithm,
		PollIntervalMs:     defaultPollIntervalMs,
		DisplayPollMs:      defaultDisplayPollMs,
		DiagnosticsEnabled: defaultDiagnostics,
		WrapEnabled:        defaultWrapEnabled,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.LayoutPath = envString("LAYOUT_PATH", "")

	mode, err := topology.ParseWrapMode(envString("WRAP_MODE", ""))
	if err != nil {
		return Config{}, fmt.Errorf("WRAP_MODE: %w", err)
	}
	cfg.WrapMode = mode

	strategy, err := topology.ParseStrategy(envString("WRAP_ALGORITHM", cfg.Algorithm))
	if err != nil {
		return Config{}, fmt.Errorf("WRAP_ALGORITHM: %w", err)
	}
	cfg.Algorithm = strategy.Name()

	poll, err := envInt("POLL_INTERVAL_MS", cfg.PollIntervalMs)
	if err != nil {
		return Config{}, err
	}
	if poll < minPollIntervalMs {
		return Config{}, fmt.Errorf("POLL_INTERVAL_MS must be >= %d", minPollIntervalMs)
	}
	cfg.PollIntervalMs = poll

	displayPoll, err := envInt("DISPLAY_POLL_MS", cfg.DisplayPollMs)
	if err != nil {
		return Config{}, err
	}
	if displayPoll < minDisplayPollIntervalMs {
		return Config{}, fmt.Errorf("DISPLAY_POLL_MS must be >= %d", minDisplayPollIntervalMs)
	}
	cfg.DisplayPollMs = displayPoll

	cfg.DiagnosticsEnabled = envBool("DIAGNOSTICS_ENABLED", cfg.DiagnosticsEnabled)
	cfg.WrapEnabled = envBool("WRAP_ENABLED", cfg.WrapEnabled)

	return cfg, nil
}

// Strategy returns the configured wrap strategy.
func (c Config) Strategy() topology.Strategy {
	s, err := topology.ParseStrategy(c.Algorithm)
	if err != nil {
		return topology.ProjectionStrategy{}
	}
	return s
}

// PollInterval returns the cursor sampling interval.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// DisplayPollInterval returns the display layout polling interval.
func (c Config) DisplayPollInterval() time.Duration {
	return time.Duration(c.DisplayPollMs) * time.Millisecond
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
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

// loadEnvFile loads KEY=VALUE pairs from a .env file. Variables already set win.
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
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
