package topology

import (
	"fmt"
	"testing"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// mon builds a monitor at (left, top) with the given size.
func mon(id, left, top, width, height int) monitor.Info {
	return monitor.New(id, fmt.Sprintf("DISPLAY%d", id+1), left, top, left+width, top+height)
}

// mustTopology initializes a topology or fails the test.
func mustTopology(t *testing.T, monitors []monitor.Info, opts ...Option) *Topology {
	t.Helper()
	topo := New(opts...)
	if err := topo.Initialize(monitors); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return topo
}

// singleLayout is one 1920x1080 monitor.
func singleLayout() []monitor.Info {
	return []monitor.Info{mon(0, 0, 0, 1920, 1080)}
}

// sideBySideLayout is two identical monitors touching at x=1920.
func sideBySideLayout() []monitor.Info {
	return []monitor.Info{mon(0, 0, 0, 1920, 1080), mon(1, 1920, 0, 1920, 1080)}
}

// staggeredLayout places a narrower second monitor 200px lower.
func staggeredLayout() []monitor.Info {
	return []monitor.Info{mon(0, 0, 0, 1920, 1080), mon(1, 1920, 200, 1820, 1080)}
}

// gapLayout is an L-shape with a 50px gap between the top row monitors.
func gapLayout() []monitor.Info {
	return []monitor.Info{
		mon(0, 0, 0, 1920, 1080),
		mon(1, 1970, 0, 1920, 1080),
		mon(2, 0, 1080, 1920, 1080),
	}
}

// findEdge returns the outer edge for a monitor side starting at start.
func findEdge(edges []Edge, id int, typ EdgeType, start int) (Edge, bool) {
	for _, e := range edges {
		if e.MonitorID == id && e.Type == typ && e.Start == start {
			return e, true
		}
	}
	return Edge{}, false
}
