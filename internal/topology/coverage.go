package topology

import (
	"fmt"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// Report summarizes how much of the outer boundary has a wrap destination.
type Report struct {
	Algorithm       string   `json:"algorithm"`
	WrapMode        WrapMode `json:"wrap_mode"`
	TotalEdgeLength int      `json:"total_edge_length"`
	CoveredLength   int      `json:"covered_length"`
	UncoveredLength int      `json:"uncovered_length"`
	CoveragePercent float64  `json:"coverage_percent"`
	IsFullyCovered  bool     `json:"is_fully_covered"`
	ProblemAreas    []string `json:"problem_areas"`
}

// ValidateAllEdgesHaveDestinations reports coverage of every outer edge under mode.
// Problem areas are ordered by monitor index, edge type and start.
func (t *Topology) ValidateAllEdgesHaveDestinations(mode WrapMode) Report {
	snap := t.current.Load()
	r := Report{
		Algorithm:    t.strategy.Name(),
		WrapMode:     mode,
		ProblemAreas: []string{},
	}
	segments := snap.tables[mode].segments
	for i, e := range snap.edges {
		r.TotalEdgeLength += e.Length()
		for _, seg := range segments[i] {
			if seg.HasWrapDestination {
				r.CoveredLength += seg.Length()
				continue
			}
			r.UncoveredLength += seg.Length()
			r.ProblemAreas = append(r.ProblemAreas, problemArea(e, seg))
		}
	}
	if r.TotalEdgeLength > 0 {
		r.CoveragePercent = float64(r.CoveredLength) / float64(r.TotalEdgeLength) * 100
	}
	r.IsFullyCovered = r.UncoveredLength == 0
	return r
}

func problemArea(e Edge, seg EdgeSegment) string {
	return fmt.Sprintf("Mon %d %s [%d-%d] (%dpx)", e.MonitorID, e.Type, seg.Start, seg.End, seg.Length())
}

// Comparison holds the coverage of the opposite and projection algorithms for one layout.
type Comparison struct {
	Old Report `json:"old"`
	New Report `json:"new"`
	// Improvement is the number of dead-zone pixels the projection algorithm removes.
	Improvement int `json:"improvement"`
}

// Compare builds the layout with both algorithms and reports their coverage.
func Compare(monitors []monitor.Info, mode WrapMode, opts ...Option) (Comparison, error) {
	build := func(s Strategy) (Report, error) {
		topo := New(append(append([]Option(nil), opts...), WithStrategy(s))...)
		if err := topo.Initialize(monitors); err != nil {
			return Report{}, err
		}
		return topo.ValidateAllEdgesHaveDestinations(mode), nil
	}
	oldReport, err := build(OppositeStrategy{})
	if err != nil {
		return Comparison{}, err
	}
	newReport, err := build(ProjectionStrategy{})
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{
		Old:         oldReport,
		New:         newReport,
		Improvement: oldReport.UncoveredLength - newReport.UncoveredLength,
	}, nil
}
