package report

import (
	"strings"
	"testing"

	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/topology"
)

// staggered returns the layout whose right monitor is shifted down by 200px.
func staggered() []monitor.Info {
	return []monitor.Info{
		monitor.New(0, "DISPLAY1", 0, 0, 1920, 1080),
		monitor.New(1, "DISPLAY2", 1920, 200, 3740, 1280),
	}
}

// TestRender_Plain verifies the plain report lists totals and problem areas.
func TestRender_Plain(t *testing.T) {
	topo := topology.New(topology.WithStrategy(topology.OppositeStrategy{}))
	if err := topo.Initialize(staggered()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	out := Render(topo.ValidateAllEdgesHaveDestinations(topology.WrapBoth), false)

	for _, want := range []string{
		"Edge coverage (opposite, both)",
		"Total edge length 10040 px",
		"problem areas",
		"  - Mon 0 Left [0-200] (200px)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output must not contain escape codes")
	}
}

// TestRender_FullyCovered verifies the status line of a complete report.
func TestRender_FullyCovered(t *testing.T) {
	out := Render(topology.Report{
		Algorithm:       "projection",
		TotalEdgeLength: 100,
		CoveredLength:   100,
		CoveragePercent: 100,
		IsFullyCovered:  true,
	}, false)
	if !strings.Contains(out, "Coverage          100.0%") || !strings.Contains(out, "fully covered") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestRenderComparison_Plain verifies both algorithms and the improvement are shown.
func TestRenderComparison_Plain(t *testing.T) {
	c, err := topology.Compare(staggered(), topology.WrapBoth)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	out := RenderComparison(c, false)
	for _, want := range []string{"opposite", "projection", "Dead zone removed 8280 px"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestRender_Styled verifies styled output keeps the content.
func TestRender_Styled(t *testing.T) {
	out := Render(topology.Report{Algorithm: "projection", IsFullyCovered: true}, true)
	if !strings.Contains(out, "fully covered") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestRenderLayout verifies monitors are listed with their edges.
func TestRenderLayout(t *testing.T) {
	topo := topology.New()
	mons := staggered()
	mons[0].Primary = true
	if err := topo.Initialize(mons); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	out := RenderLayout(topo.Monitors(), topo.OuterEdges(), false)
	if !strings.HasPrefix(out, "2 monitors, ") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "0 DISPLAY1 (0,0)-(1920,1080) 1920x1080 @100% primary") {
		t.Fatalf("missing monitor line:\n%s", out)
	}
	if !strings.Contains(out, "  Mon 1 Right [200-1280] at 3740") {
		t.Fatalf("missing edge line:\n%s", out)
	}
}
