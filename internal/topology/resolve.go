package topology

import "sort"

// Wrap is where a cursor crossing an outer edge reappears.
type Wrap struct {
	MonitorID int      `json:"monitor_id"`
	Edge      EdgeType `json:"edge_type"`
	Point     Point    `json:"point"`
	Rule      Rule     `json:"rule"`
}

// ResolveWrap maps a crossing at offset on a monitor side to its destination,
// using the configured wrap mode. ok is false when the cursor should not move:
// dead zones, internal seams, excluded modes and unknown monitors.
func (t *Topology) ResolveWrap(monitorID int, edge EdgeType, offset int) (Wrap, bool) {
	segs := t.current.Load().tables[t.mode].bySide[edgeKey{monitorID: monitorID, edge: edge}]
	i := sort.Search(len(segs), func(i int) bool { return segs[i].Start > offset }) - 1
	if i < 0 || !segs[i].Contains(offset) {
		return Wrap{}, false
	}
	seg := segs[i]
	p, ok := seg.Destination(offset)
	if !ok {
		return Wrap{}, false
	}
	return Wrap{
		MonitorID: seg.Dest.MonitorID,
		Edge:      seg.Dest.Type,
		Point:     p,
		Rule:      seg.Mapping.Rule,
	}, true
}
