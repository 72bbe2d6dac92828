// Package main starts the edgewrap cursor wrapper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/frudas24/edgewrap/internal/app"
	"github.com/frudas24/edgewrap/internal/config"
	"github.com/frudas24/edgewrap/internal/layout"
	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/pointer"
	"github.com/frudas24/edgewrap/internal/report"
	"github.com/frudas24/edgewrap/internal/topology"
	"github.com/frudas24/edgewrap/internal/wrapper"
)

// builtinLayouts selects the bundled scenarios instead of a file.
const builtinLayouts = "builtin"

// options holds command-line flags.
type options struct {
	debug      bool
	layoutPath string
	layoutName string
	compare    bool
	mode       string
	saveLayout string
}

// run wires the application and blocks until shutdown.
func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.layoutPath != "" {
		cfg.LayoutPath = opts.layoutPath
	}
	if opts.mode != "" {
		mode, err := topology.ParseWrapMode(opts.mode)
		if err != nil {
			return err
		}
		cfg.WrapMode = mode
	}
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	if opts.saveLayout != "" {
		return saveLayout(opts.saveLayout, monitor.ListMonitors)
	}
	if opts.compare {
		layouts, err := loadLayouts(cfg.LayoutPath, opts.layoutName)
		if err != nil {
			return err
		}
		return printComparisons(os.Stdout, layouts, cfg.WrapMode, styled)
	}

	if opts.debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	provider, err := monitorProvider(cfg.LayoutPath, opts.layoutName)
	if err != nil {
		return err
	}
	topo := topology.New(topology.WithStrategy(cfg.Strategy()), topology.WithWrapMode(cfg.WrapMode))
	appInstance, err := app.New(cfg, topo, provider)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, report.RenderLayout(topo.Monitors(), topo.OuterEdges(), styled))
	fmt.Fprintln(os.Stdout, report.Render(topo.ValidateAllEdgesHaveDestinations(cfg.WrapMode), styled))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go appInstance.Watch(ctx)

	if err := startWrapper(ctx, cfg, topo, opts.debug); err != nil {
		return err
	}

	if !cfg.DiagnosticsEnabled {
		log.Printf("diagnostics: disabled")
		<-ctx.Done()
		return nil
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

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

// startWrapper opens the pointer device and starts the cursor poll loop.
func startWrapper(ctx context.Context, cfg config.Config, topo *topology.Topology, debug bool) error {
	switch {
	case !cfg.WrapEnabled:
		log.Printf("wrap: disabled")
		return nil
	case cfg.LayoutPath != "":
		log.Printf("wrap: disabled for static layout %s", cfg.LayoutPath)
		return nil
	}

	dev, err := pointer.Open()
	if err != nil {
		if errors.Is(err, pointer.ErrUnsupported) {
			log.Printf("wrap: disabled (%v)", err)
			return nil
		}
		return err
	}
	w := wrapper.New(topo, dev, dev)
	w.SetDebug(debug)
	log.Printf("wrap: %s, mode %s, poll %s", cfg.Algorithm, cfg.WrapMode, cfg.PollInterval())
	go func() {
		defer dev.Close()
		_ = w.Run(ctx, cfg.PollInterval())
		log.Printf("wrap: stopped after %d wraps", w.Wraps())
	}()
	return nil
}

// monitorProvider returns the OS enumerator, or a reader for a layout file.
func monitorProvider(path, name string) (app.MonitorProvider, error) {
	if path == "" {
		return monitor.ListMonitors, nil
	}
	if path == builtinLayouts {
		l, ok := layout.Builtin().Find(name)
		if !ok {
			return nil, fmt.Errorf("builtin layout %q not found", name)
		}
		infos := l.Infos()
		return func() ([]monitor.Info, error) { return infos, nil }, nil
	}
	return func() ([]monitor.Info, error) {
		f, err := layout.Load(path)
		if err != nil {
			return nil, err
		}
		l, ok := f.Find(name)
		if !ok {
			return nil, fmt.Errorf("layout %q not found in %s", name, path)
		}
		return l.Infos(), nil
	}, nil
}

// loadLayouts returns the layouts to compare: the named one, or all of them.
// Without a path the current OS layout is used.
func loadLayouts(path, name string) ([]layout.Layout, error) {
	var f layout.File
	switch path {
	case "":
		infos, err := monitor.ListMonitors()
		if err != nil {
			return nil, err
		}
		return []layout.Layout{layout.FromInfos("current", infos)}, nil
	case builtinLayouts:
		f = layout.Builtin()
	default:
		loaded, err := layout.Load(path)
		if err != nil {
			return nil, err
		}
		f = loaded
	}
	if name == "" {
		return f.Layouts, nil
	}
	l, ok := f.Find(name)
	if !ok {
		return nil, fmt.Errorf("layout %q not found", name)
	}
	return []layout.Layout{l}, nil
}

// printComparisons writes one opposite-vs-projection comparison per layout.
func printComparisons(w io.Writer, layouts []layout.Layout, mode topology.WrapMode, styled bool) error {
	for i, l := range layouts {
		c, err := topology.Compare(l.Infos(), mode)
		if err != nil {
			return fmt.Errorf("layout %s: %w", l.Name, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := l.Name
		if l.Description != "" {
			title += " - " + l.Description
		}
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, report.RenderComparison(c, styled))
	}
	return nil
}

// saveLayout writes the enumerated monitors to a layout file.
func saveLayout(path string, list app.MonitorProvider) error {
	infos, err := list()
	if err != nil {
		return err
	}
	if err := layout.Save(path, layout.File{Layouts: []layout.Layout{layout.FromInfos("current", infos)}}); err != nil {
		return err
	}
	log.Printf("layout: saved %d monitors to %s", len(infos), path)
	return nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("edgewrap starting")
	logEnvStatus(cfg)
	if cfg.LayoutPath != "" {
		log.Printf("monitors: layout %s", cfg.LayoutPath)
	} else {
		log.Printf("monitors: os enumeration, poll %s", cfg.DisplayPollInterval())
	}
	if cfg.DiagnosticsEnabled {
		logListenStatus(cfg.ListenAddr)
	}
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
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
