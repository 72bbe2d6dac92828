// Package wrapper moves the cursor across the desktop when it reaches an outer edge.
//
// The cursor is sampled on a timer. A side counts as pushed when the cursor sits
// on its edge pixel and the most recent non-zero motion along that axis pointed
// outward. The OS clamps the cursor at the desktop boundary, so a cursor that
// paused on the edge pixel and is pushed further reports no motion at all; the
// remembered direction still lets it wrap. The remembered direction is cleared
// after every wrap so the cursor does not bounce back from its destination.
package wrapper

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/pointer"
	"github.com/frudas24/edgewrap/internal/topology"
)

// Resolver answers monitor and wrap lookups. *topology.Topology implements it.
type Resolver interface {
	MonitorAt(x, y int) (monitor.Info, bool)
	ResolveWrap(monitorID int, edge topology.EdgeType, offset int) (topology.Wrap, bool)
}

// Wrapper samples the cursor and repositions it when it arrives on an outer edge
// while moving outward.
type Wrapper struct {
	mu       sync.Mutex
	resolver Resolver
	cursor   pointer.CursorSource
	injector pointer.Injector
	debug    bool
	last     topology.Point
	hasLast  bool
	heading  topology.Point
	wraps    int
}

// New returns a wrapper reading from cursor and moving through injector.
func New(resolver Resolver, cursor pointer.CursorSource, injector pointer.Injector) *Wrapper {
	return &Wrapper{resolver: resolver, cursor: cursor, injector: injector}
}

// SetDebug toggles per-wrap logging.
func (w *Wrapper) SetDebug(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debug = enabled
}

// Wraps returns how many times the cursor was moved.
func (w *Wrapper) Wraps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wraps
}

// Step samples the cursor once and wraps it if needed. It reports the wrap performed, if any.
func (w *Wrapper) Step() (topology.Wrap, bool, error) {
	x, y, ok := w.cursor.CursorPos()
	if !ok {
		return topology.Wrap{}, false, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	prev, hadPrev := w.last, w.hasLast
	w.last, w.hasLast = topology.Point{X: x, Y: y}, true
	if !hadPrev {
		return topology.Wrap{}, false, nil
	}

	if dx := x - prev.X; dx != 0 {
		w.heading.X = dx
	}
	if dy := y - prev.Y; dy != 0 {
		w.heading.Y = dy
	}

	m, ok := w.resolver.MonitorAt(x, y)
	if !ok {
		return topology.Wrap{}, false, nil
	}
	for _, c := range crossings(m, x, y, w.heading.X, w.heading.Y) {
		wrap, ok := w.resolver.ResolveWrap(m.MonitorID, c.edge, c.offset)
		if !ok {
			continue
		}
		if err := w.injector.MoveAbs(wrap.Point.X, wrap.Point.Y); err != nil {
			return topology.Wrap{}, false, err
		}
		w.last = wrap.Point
		w.heading = topology.Point{}
		w.wraps++
		if w.debug {
			log.Printf("wrap: mon %d %s @%d -> mon %d (%d,%d) %s",
				m.MonitorID, c.edge, c.offset, wrap.MonitorID, wrap.Point.X, wrap.Point.Y, wrap.Rule)
		}
		return wrap, true, nil
	}
	return topology.Wrap{}, false, nil
}

// Run polls the cursor every interval until ctx is done.
func (w *Wrapper) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, _, err := w.Step(); err != nil {
				log.Printf("wrap: %v", err)
			}
		}
	}
}

type crossing struct {
	edge   topology.EdgeType
	offset int
}

// crossings lists the monitor sides the cursor is pressing against at (x,y)
// given the direction of its last movement on each axis, horizontal sides first.
func crossings(m monitor.Info, x, y, dx, dy int) []crossing {
	var out []crossing
	switch {
	case dx < 0 && x == m.Left:
		out = append(out, crossing{edge: topology.EdgeLeft, offset: y})
	case dx > 0 && x == m.Right-1:
		out = append(out, crossing{edge: topology.EdgeRight, offset: y})
	}
	switch {
	case dy < 0 && y == m.Top:
		out = append(out, crossing{edge: topology.EdgeTop, offset: x})
	case dy > 0 && y == m.Bottom-1:
		out = append(out, crossing{edge: topology.EdgeBottom, offset: x})
	}
	return out
}
