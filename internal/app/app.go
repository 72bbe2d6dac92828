// Package app wires the topology, display polling and the diagnostics API together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/frudas24/edgewrap/internal/config"
	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/topology"
)

// defaultWatchInterval is used when the configuration carries no display poll interval.
const defaultWatchInterval = 2 * time.Second

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Info, error)

// App keeps the topology in sync with the displays and publishes changes.
type App struct {
	mu       sync.Mutex
	cfg      config.Config
	topo     *topology.Topology
	provider MonitorProvider
	hub      *Hub
	lastErr  string
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, topo *topology.Topology, provider MonitorProvider) (*App, error) {
	if topo == nil {
		return nil, errors.New("topology is required")
	}
	if provider == nil {
		return nil, errors.New("monitor provider is required")
	}
	a := &App{cfg: cfg, topo: topo, provider: provider}
	a.hub = NewHub(func() Message { return a.message("") })
	return a, nil
}

// Topology returns the managed topology.
func (a *App) Topology() *topology.Topology {
	return a.topo
}

// Hub returns the topology websocket handler.
func (a *App) Hub() *Hub {
	return a.hub
}

// Start builds the initial topology.
func (a *App) Start() error {
	_, err := a.Rebuild("startup")
	return err
}

// Rebuild re-reads the monitors and rebuilds the topology when the layout changed.
// It reports whether a rebuild happened. On error the previous topology stays active.
func (a *App) Rebuild(reason string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	monitors, err := a.provider()
	if err != nil {
		return false, fmt.Errorf("list monitors: %w", err)
	}
	if a.topo.Version() > 0 && monitor.Equal(monitors, a.topo.Monitors()) {
		return false, nil
	}
	if err := a.topo.Initialize(monitors); err != nil {
		return false, fmt.Errorf("rebuild topology: %w", err)
	}

	msg := a.message(reason)
	r := msg.Report
	log.Printf("topology: v%d (%s) %d monitors, %d outer edges, %.1f%% covered",
		msg.Version, reason, len(msg.Monitors), len(msg.Edges), r.CoveragePercent)
	for _, area := range r.ProblemAreas {
		log.Printf("topology: dead zone %s", area)
	}
	a.hub.Broadcast(msg)
	return true, nil
}

// Watch polls the displays at the configured display poll interval until ctx is done.
func (a *App) Watch(ctx context.Context) {
	ticker := time.NewTicker(a.watchInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := a.Rebuild("display change")
			a.logWatchError(err)
		}
	}
}

// watchInterval returns the display poll interval from the configuration.
func (a *App) watchInterval() time.Duration {
	if d := a.cfg.DisplayPollInterval(); d > 0 {
		return d
	}
	return defaultWatchInterval
}

// logWatchError logs polling failures once until they change or clear.
func (a *App) logWatchError(err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == a.lastErr {
		return
	}
	a.lastErr = msg
	if err != nil {
		log.Printf("display: %v", err)
	}
}

// message snapshots the topology for subscribers.
func (a *App) message(reason string) Message {
	report := a.topo.ValidateAllEdgesHaveDestinations(a.topo.Mode())
	return Message{
		T:        MessageTopology,
		Version:  a.topo.Version(),
		Reason:   reason,
		Monitors: a.topo.Monitors(),
		Edges:    a.topo.OuterEdges(),
		Report:   &report,
	}
}
