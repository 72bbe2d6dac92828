package topology

import (
	"fmt"
	"strings"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// Candidate is an outer edge that can receive a wrapped cursor, with its monitor.
type Candidate struct {
	Edge    Edge
	Monitor monitor.Info
}

// Strategy picks the destination for one offset on a source edge. Candidates
// arrive ordered by tie-break preference; a strategy returns false when the
// offset has no destination.
type Strategy interface {
	Name() string
	Choose(src Candidate, offset int, candidates []Candidate) (Candidate, Rule, bool)
}

// TieBreaker reports whether monitor a is preferred over b when both qualify.
type TieBreaker func(a, b monitor.Info) bool

// PreferPrimary ranks the primary monitor first, then the smallest monitor id.
func PreferPrimary(a, b monitor.Info) bool {
	if a.Primary != b.Primary {
		return a.Primary
	}
	return a.MonitorID < b.MonitorID
}

// OppositeStrategy only wraps to a monitor whose opposite edge directly covers
// the offset; anything else is a dead zone.
type OppositeStrategy struct{}

// Name returns the strategy name.
func (OppositeStrategy) Name() string { return "opposite" }

// Choose returns the first candidate covering offset.
func (OppositeStrategy) Choose(_ Candidate, offset int, candidates []Candidate) (Candidate, Rule, bool) {
	for _, c := range candidates {
		if c.Edge.Contains(offset) {
			return c, RuleDirect, true
		}
	}
	return Candidate{}, RuleNone, false
}

// ProjectionStrategy covers the whole edge: offsets without a directly opposite
// monitor are clamped onto the nearest candidate, and monitors with different
// DPI or scaling map by relative position along the edge.
type ProjectionStrategy struct{}

// Name returns the strategy name.
func (ProjectionStrategy) Name() string { return "projection" }

// Choose returns the covering candidate, else the nearest one.
func (ProjectionStrategy) Choose(src Candidate, offset int, candidates []Candidate) (Candidate, Rule, bool) {
	if len(candidates) == 0 {
		return Candidate{}, RuleNone, false
	}
	best := -1
	bestDist := 0
	for i, c := range candidates {
		d := distance(c.Edge, offset)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
		if d == 0 {
			break
		}
	}
	chosen := candidates[best]
	switch {
	case !monitor.SameScale(src.Monitor, chosen.Monitor):
		return chosen, RuleProportional, true
	case bestDist == 0:
		return chosen, RuleDirect, true
	default:
		return chosen, RuleClamped, true
	}
}

// distance is how far offset lies outside the edge extent.
func distance(e Edge, offset int) int {
	switch {
	case offset < e.Start:
		return e.Start - offset
	case offset >= e.End:
		return offset - (e.End - 1)
	default:
		return 0
	}
}

// ParseStrategy maps a configured algorithm name to a strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "projection", "new":
		return ProjectionStrategy{}, nil
	case "opposite", "old":
		return OppositeStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown wrap algorithm %q", name)
	}
}
