package topology

import (
	"fmt"
	"math"
	"sort"
)

// Rule is how an offset on the source edge maps onto the destination edge.
type Rule int

// Mapping rules.
const (
	RuleNone Rule = iota
	// RuleDirect keeps the same virtual-desktop coordinate.
	RuleDirect
	// RuleClamped clamps the coordinate into the destination extent.
	RuleClamped
	// RuleProportional keeps the relative position along the edge.
	RuleProportional
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleDirect:
		return "direct"
	case RuleClamped:
		return "clamped"
	case RuleProportional:
		return "proportional"
	default:
		return "none"
	}
}

// MarshalText encodes the rule by name.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rule name.
func (r *Rule) UnmarshalText(text []byte) error {
	for _, candidate := range []Rule{RuleNone, RuleDirect, RuleClamped, RuleProportional} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown mapping rule %q", text)
}

// Mapping converts source offsets into destination offsets.
type Mapping struct {
	Rule        Rule `json:"rule"`
	SourceStart int  `json:"source_start"`
	SourceEnd   int  `json:"source_end"`
	DestStart   int  `json:"dest_start"`
	DestEnd     int  `json:"dest_end"`
}

// Apply maps a source offset to a destination offset inside [DestStart, DestEnd).
func (m Mapping) Apply(offset int) int {
	if m.DestEnd <= m.DestStart {
		return m.DestStart
	}
	if m.Rule == RuleProportional {
		norm := normalize(offset, m.SourceStart, m.SourceEnd)
		return m.DestStart + normToPixels(norm, m.DestEnd-m.DestStart)
	}
	return clamp(offset, m.DestStart, m.DestEnd-1)
}

// normalize returns offset's position along [start, end) in [0..1].
func normalize(offset, start, end int) float64 {
	if end-start <= 1 {
		return 0
	}
	return clamp01(float64(offset-start) / float64(end-start-1))
}

// normToPixels maps a normalized position onto a span of pixels.
func normToPixels(norm float64, span int) int {
	if span <= 1 {
		return 0
	}
	return int(math.Round(norm * float64(span-1)))
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeSegment is a contiguous [Start, End) piece of an edge sharing one wrap destination.
type EdgeSegment struct {
	Start              int     `json:"start"`
	End                int     `json:"end"`
	HasWrapDestination bool    `json:"has_wrap_destination"`
	Dest               Edge    `json:"dest"`
	Mapping            Mapping `json:"mapping"`
}

// Length returns the segment extent in pixels.
func (s EdgeSegment) Length() int {
	return s.End - s.Start
}

// Contains reports whether offset lies within the segment.
func (s EdgeSegment) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Destination maps a source offset to the destination pixel. ok is false for dead zones.
func (s EdgeSegment) Destination(offset int) (Point, bool) {
	if !s.HasWrapDestination {
		return Point{}, false
	}
	return s.Dest.Point(s.Mapping.Apply(offset)), true
}

// String renders the segment for diagnostics.
func (s EdgeSegment) String() string {
	if !s.HasWrapDestination {
		return fmt.Sprintf("[%d-%d] -> none", s.Start, s.End)
	}
	return fmt.Sprintf("[%d-%d] -> Mon %d %s (%s)", s.Start, s.End, s.Dest.MonitorID, s.Dest.Type, s.Mapping.Rule)
}

// candidatesFor returns the opposite outer edges of other monitors in preference order.
// When no other monitor has an outer side of that type, the full opposite sides of
// the other monitors are used instead, so a side facing only internal seams still
// gets a destination.
func candidatesFor(src Edge, snap *snapshot, prefer TieBreaker) []Candidate {
	want := src.Type.Opposite()
	var out []Candidate
	for _, e := range snap.edges {
		if e.Type != want || e.MonitorID == src.MonitorID {
			continue
		}
		out = append(out, Candidate{Edge: e, Monitor: snap.monitors[e.MonitorIndex]})
	}
	if len(out) == 0 {
		out = fullSides(src, want, snap)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Monitor.MonitorID != b.Monitor.MonitorID {
			return prefer(a.Monitor, b.Monitor)
		}
		return a.Edge.Start < b.Edge.Start
	})
	return out
}

// fullSides returns side t of every other non-degenerate monitor as a candidate.
func fullSides(src Edge, t EdgeType, snap *snapshot) []Candidate {
	var out []Candidate
	for i, m := range snap.monitors {
		if m.MonitorID == src.MonitorID || m.Degenerate() {
			continue
		}
		pos, start, end := side(m, t)
		out = append(out, Candidate{
			Edge: Edge{
				MonitorIndex: i,
				MonitorID:    m.MonitorID,
				Type:         t,
				Position:     pos,
				Start:        start,
				End:          end,
			},
			Monitor: m,
		})
	}
	return out
}

// segmentEdge partitions src into segments with their wrap destinations.
func segmentEdge(src Candidate, snap *snapshot, mode WrapMode, strategy Strategy, prefer TieBreaker) []EdgeSegment {
	edge := src.Edge
	if edge.Length() == 0 {
		return nil
	}
	undestined := []EdgeSegment{{Start: edge.Start, End: edge.End}}
	if !mode.Allows(edge.Type) {
		return undestined
	}
	candidates := candidatesFor(edge, snap, prefer)
	if len(candidates) == 0 {
		return undestined
	}

	points := breakpoints(edge, candidates)
	var out []EdgeSegment
	for i := 0; i+1 < len(points); i++ {
		seg := EdgeSegment{Start: points[i], End: points[i+1]}
		if c, rule, ok := strategy.Choose(src, seg.Start, candidates); ok {
			seg.HasWrapDestination = true
			seg.Dest = c.Edge
			seg.Mapping = Mapping{
				Rule:        rule,
				SourceStart: edge.Start,
				SourceEnd:   edge.End,
				DestStart:   c.Edge.Start,
				DestEnd:     c.Edge.End,
			}
		}
		out = appendMerged(out, seg)
	}
	return out
}

// appendMerged appends seg, extending the previous segment when both share a destination.
func appendMerged(out []EdgeSegment, seg EdgeSegment) []EdgeSegment {
	if n := len(out); n > 0 {
		last := &out[n-1]
		if last.End == seg.Start &&
			last.HasWrapDestination == seg.HasWrapDestination &&
			last.Dest == seg.Dest &&
			last.Mapping == seg.Mapping {
			last.End = seg.End
			return out
		}
	}
	return append(out, seg)
}

// breakpoints returns the sorted offsets at which a strategy's choice can change:
// the edge bounds, every candidate bound, and the points where the nearest
// candidate flips between one ending below and one starting above.
func breakpoints(src Edge, candidates []Candidate) []int {
	set := map[int]struct{}{src.Start: {}, src.End: {}}
	add := func(p int) {
		if p > src.Start && p < src.End {
			set[p] = struct{}{}
		}
	}
	for _, c := range candidates {
		add(c.Edge.Start)
		add(c.Edge.End)
	}
	for _, below := range candidates {
		for _, above := range candidates {
			if below.Edge.End > above.Edge.Start {
				continue
			}
			// Distances tie where (o - (below.End-1)) == (above.Start - o).
			mid := floorDiv(above.Edge.Start+below.Edge.End-1, 2)
			add(mid)
			add(mid + 1)
		}
	}
	points := make([]int, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	sort.Ints(points)
	return points
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
