// Package topology derives the outer boundary of a monitor layout and the wrap
// destinations for every point on it.
package topology

import (
	"fmt"
	"sort"
	"strings"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// EdgeType names a side of a monitor rectangle.
type EdgeType int

// Edge types in their fixed enumeration order.
const (
	EdgeLeft EdgeType = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

var edgeTypes = [...]EdgeType{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

// String returns the edge name used in reports.
func (t EdgeType) String() string {
	switch t {
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
}

// MarshalText encodes the edge type by name.
func (t EdgeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes an edge type name.
func (t *EdgeType) UnmarshalText(text []byte) error {
	parsed, err := ParseEdgeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseEdgeType parses an edge name, case-insensitively.
func ParseEdgeType(s string) (EdgeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	default:
		return 0, fmt.Errorf("unknown edge type %q", s)
	}
}

// Opposite returns the edge a cursor crossing t reappears on.
func (t EdgeType) Opposite() EdgeType {
	switch t {
	case EdgeLeft:
		return EdgeRight
	case EdgeRight:
		return EdgeLeft
	case EdgeTop:
		return EdgeBottom
	default:
		return EdgeTop
	}
}

// Vertical reports whether the edge is a vertical line (Left/Right), which wraps horizontally.
func (t EdgeType) Vertical() bool {
	return t == EdgeLeft || t == EdgeRight
}

// Point is a pixel in virtual-desktop coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Edge is an outer piece of one monitor side. Start/End is the half-open extent
// along the edge (y for Left/Right, x for Top/Bottom); Position is the boundary
// line (left, right, top or bottom of the monitor).
type Edge struct {
	MonitorIndex int      `json:"monitor_index"`
	MonitorID    int      `json:"monitor_id"`
	Type         EdgeType `json:"edge_type"`
	Position     int      `json:"position"`
	Start        int      `json:"start"`
	End          int      `json:"end"`
}

// Length returns the extent of the edge in pixels.
func (e Edge) Length() int {
	if e.End <= e.Start {
		return 0
	}
	return e.End - e.Start
}

// Contains reports whether offset lies within [Start, End).
func (e Edge) Contains(offset int) bool {
	return offset >= e.Start && offset < e.End
}

// Inside returns the coordinate of the monitor's own pixel line along this edge.
func (e Edge) Inside() int {
	switch e.Type {
	case EdgeRight, EdgeBottom:
		return e.Position - 1
	default:
		return e.Position
	}
}

// Point converts an offset along the edge into a virtual-desktop pixel.
func (e Edge) Point(offset int) Point {
	if e.Type.Vertical() {
		return Point{X: e.Inside(), Y: offset}
	}
	return Point{X: offset, Y: e.Inside()}
}

// String renders the edge as used in diagnostics.
func (e Edge) String() string {
	return fmt.Sprintf("Mon %d %s [%d-%d]", e.MonitorID, e.Type, e.Start, e.End)
}

// side returns the boundary line and extent of one side of a monitor.
func side(m monitor.Info, t EdgeType) (position, start, end int) {
	switch t {
	case EdgeLeft:
		return m.Left, m.Top, m.Bottom
	case EdgeRight:
		return m.Right, m.Top, m.Bottom
	case EdgeTop:
		return m.Top, m.Left, m.Right
	default:
		return m.Bottom, m.Left, m.Right
	}
}

// borders reports whether n occupies the pixel line just outside side t of m.
func borders(n, m monitor.Info, t EdgeType) bool {
	switch t {
	case EdgeLeft:
		return n.Left < m.Left && n.Right >= m.Left
	case EdgeRight:
		return n.Left <= m.Right && n.Right > m.Right
	case EdgeTop:
		return n.Top < m.Top && n.Bottom >= m.Top
	default:
		return n.Top <= m.Bottom && n.Bottom > m.Bottom
	}
}

type span struct {
	start int
	end   int
}

// outerEdges splits every monitor side into the pieces not bordered by another monitor.
// Output is ordered by monitor index, then edge type, then start.
func outerEdges(monitors []monitor.Info) []Edge {
	var edges []Edge
	for i, m := range monitors {
		if m.Degenerate() {
			continue
		}
		for _, t := range edgeTypes {
			pos, start, end := side(m, t)
			var blocked []span
			for j, n := range monitors {
				if j == i || n.Degenerate() || !borders(n, m, t) {
					continue
				}
				_, nStart, nEnd := side(n, t)
				lo := max(start, nStart)
				hi := min(end, nEnd)
				if hi > lo {
					blocked = append(blocked, span{start: lo, end: hi})
				}
			}
			for _, s := range subtract(span{start: start, end: end}, blocked) {
				edges = append(edges, Edge{
					MonitorIndex: i,
					MonitorID:    m.MonitorID,
					Type:         t,
					Position:     pos,
					Start:        s.start,
					End:          s.end,
				})
			}
		}
	}
	return edges
}

// subtract removes the blocked spans from full and returns the ordered remainder.
func subtract(full span, blocked []span) []span {
	if full.end <= full.start {
		return nil
	}
	sort.Slice(blocked, func(i, j int) bool { return blocked[i].start < blocked[j].start })
	var out []span
	cursor := full.start
	for _, b := range blocked {
		if b.start > cursor {
			out = append(out, span{start: cursor, end: b.start})
		}
		if b.end > cursor {
			cursor = b.end
		}
	}
	if cursor < full.end {
		out = append(out, span{start: cursor, end: full.end})
	}
	return out
}
