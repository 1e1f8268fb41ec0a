// Package spf derives, for every ordered pair, the equal-cost
// lowest-weight subset of an allpaths.AllPaths result — the ECMP set — and
// exposes a pair-wise cost lookup used pervasively by the LFA and rLFA
// engines.
package spf

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jwbensley/frrpaths/allpaths"
	"github.com/jwbensley/frrpaths/pathset"
)

// ErrNoPath is returned by CostBetween (the explicit-failure API; see
// spec.md §9) when no SPF path exists between the requested pair.
var ErrNoPath = errors.New("spf: no path between the requested pair")

// SPF holds the per-pair minimum-weight NodePaths.
type SPF struct {
	pairs map[string]map[string]*pathset.NodePaths
}

// Compute filters ap's AllPaths down to, for every pair with at least one
// path, the subset whose weight equals that pair's minimum (ties/ECMP are
// retained in full). A pair absent from ap is absent from the result;
// GetPathsBetween still returns a valid empty NodePaths for it.
func Compute(ap *allpaths.AllPaths, logger zerolog.Logger) *SPF {
	s := &SPF{pairs: make(map[string]map[string]*pathset.NodePaths)}

	for _, source := range ap.Sources() {
		for target, all := range ap.GetPathsFrom(source) {
			minWeight, ok := all.MinWeight()
			if !ok {
				continue
			}
			lowest := pathset.NewNodePaths(source, target)
			for _, np := range all.Paths {
				if np.Weight() != minWeight {
					break // all.Paths is weight-sorted; nothing further can tie.
				}
				_ = lowest.Append(np)
			}
			s.store(source, target, lowest)
		}
	}

	logger.Debug().Msg("spf: computed lowest-weight paths for all reachable pairs")
	return s
}

func (s *SPF) store(source, target string, ps *pathset.NodePaths) {
	byTarget, ok := s.pairs[source]
	if !ok {
		byTarget = make(map[string]*pathset.NodePaths)
		s.pairs[source] = byTarget
	}
	byTarget[target] = ps
}

// GetPathsBetween returns the SPF NodePaths from source to target, or an
// empty (but non-nil) NodePaths if there is none.
func (s *SPF) GetPathsBetween(source, target string) *pathset.NodePaths {
	if byTarget, ok := s.pairs[source]; ok {
		if ps, ok := byTarget[target]; ok {
			return ps
		}
	}
	return pathset.NewNodePaths(source, target)
}

// PairCost returns the weight shared by every SPF path between source and
// target, and false if no such path exists. Per spec.md §9's resolution
// of the zero-weight open question, this never conflates "no path" with
// "zero-cost path": the bool return is the only signal for absence.
func (s *SPF) PairCost(source, target string) (int, bool) {
	ps := s.GetPathsBetween(source, target)
	return ps.MinWeight()
}

// CostBetween is PairCost's explicit-failure variant: it returns
// ErrNoPath instead of a bool when source and target are disconnected.
func (s *SPF) CostBetween(source, target string) (int, error) {
	cost, ok := s.PairCost(source, target)
	if !ok {
		return 0, fmt.Errorf("spf: %s->%s: %w", source, target, ErrNoPath)
	}
	return cost, nil
}
