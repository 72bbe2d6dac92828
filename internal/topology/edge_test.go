package topology

import (
	"reflect"
	"testing"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// TestOuterEdges_SingleMonitor verifies every side of a lone monitor is outer, in order.
func TestOuterEdges_SingleMonitor(t *testing.T) {
	got := outerEdges(singleLayout())
	want := []Edge{
		{MonitorIndex: 0, MonitorID: 0, Type: EdgeLeft, Position: 0, Start: 0, End: 1080},
		{MonitorIndex: 0, MonitorID: 0, Type: EdgeRight, Position: 1920, Start: 0, End: 1080},
		{MonitorIndex: 0, MonitorID: 0, Type: EdgeTop, Position: 0, Start: 0, End: 1920},
		{MonitorIndex: 0, MonitorID: 0, Type: EdgeBottom, Position: 1080, Start: 0, End: 1920},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestOuterEdges_SideBySide verifies the shared seam is not an outer edge.
func TestOuterEdges_SideBySide(t *testing.T) {
	edges := outerEdges(sideBySideLayout())
	if len(edges) != 6 {
		t.Fatalf("expected 6 outer edges, got %d: %+v", len(edges), edges)
	}
	for _, e := range edges {
		if e.MonitorID == 0 && e.Type == EdgeRight {
			t.Fatalf("monitor 0 right edge should be internal: %+v", e)
		}
		if e.MonitorID == 1 && e.Type == EdgeLeft {
			t.Fatalf("monitor 1 left edge should be internal: %+v", e)
		}
	}
}

// TestOuterEdges_Staggered verifies partially bordered sides keep only their exposed piece.
func TestOuterEdges_Staggered(t *testing.T) {
	edges := outerEdges(staggeredLayout())
	right, ok := findEdge(edges, 0, EdgeRight, 0)
	if !ok || right.End != 200 || right.Position != 1920 {
		t.Fatalf("expected monitor 0 right piece [0-200), got ok=%v %+v", ok, right)
	}
	left, ok := findEdge(edges, 1, EdgeLeft, 1080)
	if !ok || left.End != 1280 || left.Position != 1920 {
		t.Fatalf("expected monitor 1 left piece [1080-1280), got ok=%v %+v", ok, left)
	}
	if len(edges) != 8 {
		t.Fatalf("expected 8 outer edges, got %d", len(edges))
	}
}

// TestOuterEdges_Gap verifies sides facing a gap stay outer while touching sides do not.
func TestOuterEdges_Gap(t *testing.T) {
	edges := outerEdges(gapLayout())
	if e, ok := findEdge(edges, 0, EdgeRight, 0); !ok || e.End != 1080 {
		t.Fatalf("expected monitor 0 right edge to be outer, got ok=%v %+v", ok, e)
	}
	if e, ok := findEdge(edges, 1, EdgeLeft, 0); !ok || e.Position != 1970 {
		t.Fatalf("expected monitor 1 left edge at x=1970, got ok=%v %+v", ok, e)
	}
	if _, ok := findEdge(edges, 0, EdgeBottom, 0); ok {
		t.Fatalf("monitor 0 bottom edge should be internal")
	}
	if _, ok := findEdge(edges, 2, EdgeTop, 0); ok {
		t.Fatalf("monitor 2 top edge should be internal")
	}
}

// TestOuterEdges_Overlapping verifies overlapping monitors are handled without panics.
func TestOuterEdges_Overlapping(t *testing.T) {
	edges := outerEdges([]monitor.Info{mon(0, 0, 0, 1000, 1000), mon(1, 500, 0, 1000, 1000)})
	if len(edges) != 6 {
		t.Fatalf("expected 6 outer edges, got %d: %+v", len(edges), edges)
	}
	if _, ok := findEdge(edges, 0, EdgeRight, 0); ok {
		t.Fatalf("monitor 0 right edge lies inside monitor 1")
	}
	if _, ok := findEdge(edges, 1, EdgeLeft, 0); ok {
		t.Fatalf("monitor 1 left edge lies inside monitor 0")
	}
}

// TestOuterEdges_Degenerate verifies zero-size monitors contribute no edges.
func TestOuterEdges_Degenerate(t *testing.T) {
	edges := outerEdges([]monitor.Info{mon(0, 0, 0, 1920, 1080), mon(1, 1920, 0, 0, 1080)})
	for _, e := range edges {
		if e.MonitorID == 1 {
			t.Fatalf("degenerate monitor produced edge %+v", e)
		}
	}
	if len(edges) != 4 {
		t.Fatalf("expected 4 outer edges, got %d", len(edges))
	}
}

// TestSubtract verifies blocked spans are removed, including overlapping ones.
func TestSubtract(t *testing.T) {
	got := subtract(span{0, 100}, []span{{60, 80}, {10, 20}, {15, 30}})
	want := []span{{0, 10}, {30, 60}, {80, 100}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := subtract(span{0, 100}, []span{{0, 100}}); len(got) != 0 {
		t.Fatalf("expected fully blocked span, got %+v", got)
	}
	if got := subtract(span{5, 5}, nil); got != nil {
		t.Fatalf("expected empty span to yield nothing, got %+v", got)
	}
}

// TestEdgePoint verifies destination pixels sit inside the monitor.
func TestEdgePoint(t *testing.T) {
	cases := []struct {
		edge Edge
		want Point
	}{
		{Edge{Type: EdgeLeft, Position: 0}, Point{X: 0, Y: 40}},
		{Edge{Type: EdgeRight, Position: 1920}, Point{X: 1919, Y: 40}},
		{Edge{Type: EdgeTop, Position: 0}, Point{X: 40, Y: 0}},
		{Edge{Type: EdgeBottom, Position: 1080}, Point{X: 40, Y: 1079}},
	}
	for _, tc := range cases {
		if got := tc.edge.Point(40); got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.edge.Type, tc.want, got)
		}
	}
}

// TestParseEdgeType verifies names round-trip and unknown names fail.
func TestParseEdgeType(t *testing.T) {
	for _, typ := range edgeTypes {
		got, err := ParseEdgeType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("expected %s, got %v err=%v", typ, got, err)
		}
		if typ.Opposite().Opposite() != typ {
			t.Fatalf("opposite of opposite should be %s", typ)
		}
	}
	if _, err := ParseEdgeType("diagonal"); err == nil {
		t.Fatalf("expected error for unknown edge")
	}
}
