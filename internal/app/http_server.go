package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/frudas24/edgewrap/internal/topology"
	"github.com/frudas24/edgewrap/internal/web"
)

// RegisterRoutes wires API, websocket and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/api/monitors", a.handleMonitors)
	mux.HandleFunc("/api/edges", a.handleEdges)
	mux.HandleFunc("/api/coverage", a.handleCoverage)
	mux.HandleFunc("/api/segments", a.handleSegments)
	mux.HandleFunc("/api/resolve", a.handleResolve)
	mux.Handle("/ws/topology", a.Hub())
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type resolveResponse struct {
	Wrapped bool           `json:"wrapped"`
	Wrap    *topology.Wrap `json:"wrap,omitempty"`
}

// handleMonitors returns the monitors of the active topology.
func (a *App) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, a.topo.Monitors())
}

// handleEdges returns the outer edges of the active topology.
func (a *App) handleEdges(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, a.topo.OuterEdges())
}

// handleCoverage returns the coverage report for ?mode= and ?algorithm=.
// algorithm=compare returns both algorithms side by side.
func (a *App) handleCoverage(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	mode, err := a.modeParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	algorithm := r.URL.Query().Get("algorithm")
	if algorithm == "compare" {
		c, err := topology.Compare(a.topo.Monitors(), mode)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, c)
		return
	}

	strategy := a.topo.Strategy()
	if algorithm != "" {
		if strategy, err = topology.ParseStrategy(algorithm); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if strategy.Name() == a.topo.Strategy().Name() {
		writeJSON(w, a.topo.ValidateAllEdgesHaveDestinations(mode))
		return
	}
	alt := topology.New(topology.WithStrategy(strategy), topology.WithWrapMode(mode))
	if err := alt.Initialize(a.topo.Monitors()); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, alt.ValidateAllEdgesHaveDestinations(mode))
}

// handleSegments returns the segments of one monitor side: ?monitor=&edge=&mode=.
func (a *App) handleSegments(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	id, edge, err := sideParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	mode, err := a.modeParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	segs := a.topo.SideSegments(id, edge, mode)
	if segs == nil {
		segs = []topology.EdgeSegment{}
	}
	writeJSON(w, segs)
}

// handleResolve resolves one crossing: ?monitor=&edge=&offset=.
func (a *App) handleResolve(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	id, edge, err := sideParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	offset, err := intParam(r, "offset")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	wrap, ok := a.topo.ResolveWrap(id, edge, offset)
	if !ok {
		writeJSON(w, resolveResponse{})
		return
	}
	writeJSON(w, resolveResponse{Wrapped: true, Wrap: &wrap})
}

// modeParam parses ?mode=, defaulting to the topology's mode.
func (a *App) modeParam(r *http.Request) (topology.WrapMode, error) {
	raw := r.URL.Query().Get("mode")
	if raw == "" {
		return a.topo.Mode(), nil
	}
	return topology.ParseWrapMode(raw)
}

// sideParams parses ?monitor= and ?edge=.
func sideParams(r *http.Request) (int, topology.EdgeType, error) {
	id, err := intParam(r, "monitor")
	if err != nil {
		return 0, 0, err
	}
	edge, err := topology.ParseEdgeType(r.URL.Query().Get("edge"))
	if err != nil {
		return 0, 0, err
	}
	return id, edge, nil
}

// intParam parses a required integer query parameter.
func intParam(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

// requireGet rejects non-GET requests.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		return http.FileServer(http.Dir(staticDir))
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
