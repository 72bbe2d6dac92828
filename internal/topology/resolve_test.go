package topology

import (
	"testing"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// TestResolveWrap_SideBySide verifies horizontal and clamped vertical wraps.
func TestResolveWrap_SideBySide(t *testing.T) {
	topo := mustTopology(t, sideBySideLayout())

	w, ok := topo.ResolveWrap(0, EdgeLeft, 500)
	if !ok {
		t.Fatalf("expected a wrap from monitor 0 left")
	}
	want := Wrap{MonitorID: 1, Edge: EdgeRight, Point: Point{X: 3839, Y: 500}, Rule: RuleDirect}
	if w != want {
		t.Fatalf("expected %+v, got %+v", want, w)
	}

	w, ok = topo.ResolveWrap(0, EdgeTop, 100)
	if !ok {
		t.Fatalf("expected a wrap from monitor 0 top")
	}
	want = Wrap{MonitorID: 1, Edge: EdgeBottom, Point: Point{X: 1920, Y: 1079}, Rule: RuleClamped}
	if w != want {
		t.Fatalf("expected %+v, got %+v", want, w)
	}
}

// TestResolveWrap_NotFound verifies seams, unknown monitors and out-of-range offsets do not wrap.
func TestResolveWrap_NotFound(t *testing.T) {
	topo := mustTopology(t, sideBySideLayout())
	if _, ok := topo.ResolveWrap(0, EdgeRight, 500); ok {
		t.Fatalf("internal seam must not wrap")
	}
	if _, ok := topo.ResolveWrap(9, EdgeLeft, 0); ok {
		t.Fatalf("unknown monitor must not wrap")
	}
	if _, ok := topo.ResolveWrap(0, EdgeLeft, 5000); ok {
		t.Fatalf("offset past the edge must not wrap")
	}
	if _, ok := topo.ResolveWrap(0, EdgeLeft, -1); ok {
		t.Fatalf("offset before the edge must not wrap")
	}
}

// TestResolveWrap_SingleMonitor verifies a lone monitor never wraps.
func TestResolveWrap_SingleMonitor(t *testing.T) {
	topo := mustTopology(t, singleLayout())
	for _, typ := range edgeTypes {
		if _, ok := topo.ResolveWrap(0, typ, 10); ok {
			t.Fatalf("%s: single monitor must not wrap", typ)
		}
	}
}

// TestResolveWrap_ModeExcluded verifies the configured mode filters edges.
func TestResolveWrap_ModeExcluded(t *testing.T) {
	topo := mustTopology(t, sideBySideLayout(), WithWrapMode(WrapHorizontal))
	if _, ok := topo.ResolveWrap(0, EdgeTop, 100); ok {
		t.Fatalf("top edge must not wrap in horizontal mode")
	}
	if _, ok := topo.ResolveWrap(0, EdgeLeft, 100); !ok {
		t.Fatalf("left edge must wrap in horizontal mode")
	}
}

// TestResolveWrap_StaggeredClamp verifies misaligned offsets clamp onto the destination.
func TestResolveWrap_StaggeredClamp(t *testing.T) {
	topo := mustTopology(t, staggeredLayout())
	w, ok := topo.ResolveWrap(0, EdgeLeft, 100)
	if !ok {
		t.Fatalf("expected projection to wrap the misaligned offset")
	}
	want := Wrap{MonitorID: 1, Edge: EdgeRight, Point: Point{X: 3739, Y: 200}, Rule: RuleClamped}
	if w != want {
		t.Fatalf("expected %+v, got %+v", want, w)
	}

	old := mustTopology(t, staggeredLayout(), WithStrategy(OppositeStrategy{}))
	if _, ok := old.ResolveWrap(0, EdgeLeft, 100); ok {
		t.Fatalf("old algorithm should leave a dead zone at y=100")
	}
}

// TestResolveWrap_MixedScaling verifies monitors with different DPI map by relative position.
func TestResolveWrap_MixedScaling(t *testing.T) {
	hi := mon(1, 1920, 0, 3840, 2160)
	hi.DPI = 192
	hi.ScalingPercent = 200
	topo := mustTopology(t, []monitor.Info{mon(0, 0, 0, 1920, 1080), hi})

	cases := []struct {
		id     int
		edge   EdgeType
		offset int
		want   Point
	}{
		{0, EdgeLeft, 0, Point{X: 5759, Y: 0}},
		{0, EdgeLeft, 1079, Point{X: 5759, Y: 2159}},
		{1, EdgeRight, 2159, Point{X: 0, Y: 1079}},
		{1, EdgeRight, 0, Point{X: 0, Y: 0}},
	}
	for _, tc := range cases {
		w, ok := topo.ResolveWrap(tc.id, tc.edge, tc.offset)
		if !ok {
			t.Fatalf("mon %d %s %d: expected a wrap", tc.id, tc.edge, tc.offset)
		}
		if w.Point != tc.want || w.Rule != RuleProportional {
			t.Fatalf("mon %d %s %d: expected %+v proportional, got %+v", tc.id, tc.edge, tc.offset, tc.want, w)
		}
	}
}

// TestResolveWrap_BeforeInitialize verifies queries on an empty topology return not found.
func TestResolveWrap_BeforeInitialize(t *testing.T) {
	if _, ok := New().ResolveWrap(0, EdgeLeft, 0); ok {
		t.Fatalf("empty topology must not wrap")
	}
}
