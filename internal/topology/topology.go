package topology

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/frudas24/edgewrap/internal/monitor"
)

var (
	// ErrNoMonitors rejects an empty monitor list.
	ErrNoMonitors = errors.New("at least one monitor is required")
	// ErrDuplicateMonitorID rejects two monitors sharing an id.
	ErrDuplicateMonitorID = errors.New("duplicate monitor id")
)

// edgeKey addresses every outer piece of one monitor side.
type edgeKey struct {
	monitorID int
	edge      EdgeType
}

// table holds the segments of every outer edge for one wrap mode.
type table struct {
	// segments is parallel to snapshot.edges.
	segments [][]EdgeSegment
	// bySide concatenates the segments of all pieces of a side, ordered by start.
	bySide map[edgeKey][]EdgeSegment
}

// snapshot is an immutable build of the topology. Readers never see it change.
type snapshot struct {
	version  int
	monitors []monitor.Info
	edges    []Edge
	tables   map[WrapMode]table
}

var emptySnapshot = &snapshot{tables: map[WrapMode]table{}}

// Option configures a Topology.
type Option func(*Topology)

// WithStrategy selects the destination algorithm. The default is ProjectionStrategy.
func WithStrategy(s Strategy) Option {
	return func(t *Topology) {
		if s != nil {
			t.strategy = s
		}
	}
}

// WithWrapMode selects the mode used by ResolveWrap. The default is WrapBoth.
func WithWrapMode(m WrapMode) Option {
	return func(t *Topology) { t.mode = m }
}

// WithTieBreaker overrides the candidate preference. The default is PreferPrimary.
func WithTieBreaker(tb TieBreaker) Option {
	return func(t *Topology) {
		if tb != nil {
			t.prefer = tb
		}
	}
}

// Topology owns the monitor layout and its precomputed wrap tables.
// Initialize swaps in a new snapshot; all queries read the current one without locking.
type Topology struct {
	mu       sync.Mutex
	current  atomic.Pointer[snapshot]
	strategy Strategy
	mode     WrapMode
	prefer   TieBreaker
}

// New returns an empty topology. Call Initialize before querying.
func New(opts ...Option) *Topology {
	t := &Topology{
		strategy: ProjectionStrategy{},
		mode:     WrapBoth,
		prefer:   PreferPrimary,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.current.Store(emptySnapshot)
	return t
}

// Strategy returns the configured destination algorithm.
func (t *Topology) Strategy() Strategy {
	return t.strategy
}

// Mode returns the wrap mode used by ResolveWrap.
func (t *Topology) Mode() WrapMode {
	return t.mode
}

// Initialize rebuilds edges and segment tables from monitors. On error the
// previous state is kept.
func (t *Topology) Initialize(monitors []monitor.Info) error {
	if err := validate(monitors); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.build(monitors)
	snap.version = t.current.Load().version + 1
	t.current.Store(snap)
	return nil
}

// validate rejects configuration errors. Geometry problems are not errors.
func validate(monitors []monitor.Info) error {
	if len(monitors) == 0 {
		return ErrNoMonitors
	}
	seen := make(map[int]struct{}, len(monitors))
	for _, m := range monitors {
		if _, dup := seen[m.MonitorID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateMonitorID, m.MonitorID)
		}
		seen[m.MonitorID] = struct{}{}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// build computes a complete snapshot without touching the current one.
func (t *Topology) build(monitors []monitor.Info) *snapshot {
	snap := &snapshot{
		monitors: append([]monitor.Info(nil), monitors...),
		tables:   make(map[WrapMode]table, len(wrapModes)),
	}
	snap.edges = outerEdges(snap.monitors)
	for _, mode := range wrapModes {
		tbl := table{
			segments: make([][]EdgeSegment, len(snap.edges)),
			bySide:   make(map[edgeKey][]EdgeSegment),
		}
		for i, e := range snap.edges {
			src := Candidate{Edge: e, Monitor: snap.monitors[e.MonitorIndex]}
			segs := segmentEdge(src, snap, mode, t.strategy, t.prefer)
			tbl.segments[i] = segs
			key := edgeKey{monitorID: e.MonitorID, edge: e.Type}
			tbl.bySide[key] = append(tbl.bySide[key], segs...)
		}
		for key, segs := range tbl.bySide {
			sort.Slice(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })
			tbl.bySide[key] = segs
		}
		snap.tables[mode] = tbl
	}
	return snap
}

// Version counts successful rebuilds.
func (t *Topology) Version() int {
	return t.current.Load().version
}

// Monitors returns a copy of the current monitor list.
func (t *Topology) Monitors() []monitor.Info {
	return append([]monitor.Info(nil), t.current.Load().monitors...)
}

// OuterEdges returns the outer edges ordered by monitor index, edge type and start.
func (t *Topology) OuterEdges() []Edge {
	return append([]Edge(nil), t.current.Load().edges...)
}

// MonitorAt returns the first monitor containing the pixel.
func (t *Topology) MonitorAt(x, y int) (monitor.Info, bool) {
	for _, m := range t.current.Load().monitors {
		if m.Contains(x, y) {
			return m, true
		}
	}
	return monitor.Info{}, false
}

// GetEdgeSegmentsWithWrapInfo partitions edge into segments for the given mode
// using the current layout. The segments cover the edge exactly, in order.
func (t *Topology) GetEdgeSegmentsWithWrapInfo(edge Edge, mode WrapMode) []EdgeSegment {
	snap := t.current.Load()
	for i, e := range snap.edges {
		if e == edge {
			return append([]EdgeSegment(nil), snap.tables[mode].segments[i]...)
		}
	}
	if edge.Length() == 0 {
		return nil
	}
	src, ok := monitor.FindByID(snap.monitors, edge.MonitorID)
	if !ok {
		return []EdgeSegment{{Start: edge.Start, End: edge.End}}
	}
	return segmentEdge(Candidate{Edge: edge, Monitor: src}, snap, mode, t.strategy, t.prefer)
}

// SideSegments returns the segments of every outer piece of one monitor side.
func (t *Topology) SideSegments(monitorID int, edge EdgeType, mode WrapMode) []EdgeSegment {
	segs := t.current.Load().tables[mode].bySide[edgeKey{monitorID: monitorID, edge: edge}]
	return append([]EdgeSegment(nil), segs...)
}
