package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frudas24/edgewrap/internal/layout"
	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/topology"
)

// TestLoadLayouts_Builtin verifies the bundled scenarios can be selected by name.
func TestLoadLayouts_Builtin(t *testing.T) {
	all, err := loadLayouts(builtinLayouts, "")
	if err != nil {
		t.Fatalf("loadLayouts failed: %v", err)
	}
	if len(all) != len(layout.Builtin().Layouts) {
		t.Fatalf("expected every builtin layout, got %d", len(all))
	}

	one, err := loadLayouts(builtinLayouts, "staggered")
	if err != nil || len(one) != 1 || one[0].Name != "staggered" {
		t.Fatalf("unexpected selection %+v err=%v", one, err)
	}

	if _, err := loadLayouts(builtinLayouts, "missing"); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
}

// TestPrintComparisons verifies one comparison block per layout.
func TestPrintComparisons(t *testing.T) {
	layouts, err := loadLayouts(builtinLayouts, "staggered")
	if err != nil {
		t.Fatalf("loadLayouts failed: %v", err)
	}
	var buf bytes.Buffer
	if err := printComparisons(&buf, layouts, topology.WrapBoth, false); err != nil {
		t.Fatalf("printComparisons failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "staggered") || !strings.Contains(out, "Dead zone removed 8280 px") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestSaveLayout_RoundTrip verifies a saved layout feeds the file provider.
func TestSaveLayout_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts", "current.yaml")
	mons := []monitor.Info{
		monitor.New(0, "DISPLAY1", 0, 0, 1920, 1080),
		monitor.New(1, "DISPLAY2", 1920, 0, 3840, 1080),
	}
	mons[0].Primary = true
	if err := saveLayout(path, func() ([]monitor.Info, error) { return mons, nil }); err != nil {
		t.Fatalf("saveLayout failed: %v", err)
	}

	provider, err := monitorProvider(path, "current")
	if err != nil {
		t.Fatalf("monitorProvider failed: %v", err)
	}
	got, err := provider()
	if err != nil {
		t.Fatalf("provider failed: %v", err)
	}
	if !monitor.Equal(got, mons) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, mons)
	}
}

// TestSaveLayout_ProviderError verifies enumeration errors are returned.
func TestSaveLayout_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	err := saveLayout(filepath.Join(t.TempDir(), "x.yaml"), func() ([]monitor.Info, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

// TestMonitorProvider_Builtin verifies builtin layouts resolve without a file.
func TestMonitorProvider_Builtin(t *testing.T) {
	provider, err := monitorProvider(builtinLayouts, "mixed-dpi")
	if err != nil {
		t.Fatalf("monitorProvider failed: %v", err)
	}
	got, err := provider()
	if err != nil || len(got) < 2 {
		t.Fatalf("unexpected monitors %+v err=%v", got, err)
	}
	if _, err := monitorProvider(builtinLayouts, "missing"); err == nil {
		t.Fatalf("expected error for unknown builtin layout")
	}
}
