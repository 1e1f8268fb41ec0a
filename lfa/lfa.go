// Package lfa implements RFC 5286 loop-free alternates: for every ordered
// pair (S, D) and every neighbour N of S that is not already a primary
// next hop, it evaluates the three RFC 5286 inequalities against
// precomputed SPF costs and emits link-, downstream- and node-protecting
// candidate paths.
package lfa

import (
	"github.com/rs/zerolog"

	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/spf"
	"github.com/jwbensley/frrpaths/topology"
)

// LFA holds, for every (S, D) pair with at least one tagged alternate, the
// NodePaths collection of candidates. A given underlying node sequence may
// appear up to three times, once per protection flag it earns — this is a
// multiset by design, not a deduplicated set (spec.md §4.5).
type LFA struct {
	pairs map[string]map[string]*pathset.NodePaths
	total int
}

// Compute evaluates RFC 5286 for every ordered pair of distinct nodes in
// top, using s as the precomputed SPF cost/path source.
func Compute(top *topology.Topology, s *spf.SPF, logger zerolog.Logger) (*LFA, error) {
	l := &LFA{pairs: make(map[string]map[string]*pathset.NodePaths)}

	for _, source := range top.Nodes() {
		for _, target := range top.Nodes() {
			if source == target {
				continue
			}
			if err := l.computePair(top, s, source, target); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug().Int("total_lfa_paths", l.total).Msg("lfa: computed all pairs")
	return l, nil
}

func (l *LFA) computePair(top *topology.Topology, s *spf.SPF, source, target string) error {
	spfSD := s.GetPathsBetween(source, target)
	if spfSD.Len() == 0 {
		return nil // no SPF path S->D: nothing to protect.
	}
	nhSet := spfSD.FirstHopNodes()
	costSD, ok := s.PairCost(source, target)
	if !ok {
		return nil
	}

	sourceNode := top.Node(source)
	if sourceNode == nil {
		return nil
	}

	for _, n := range sourceNode.Neighbours() {
		if n == target {
			continue // directly connected: no LFA applies.
		}
		if isPrimaryNextHop(nhSet, n) {
			continue // already a primary next hop.
		}
		if err := l.evaluateNeighbour(top, s, source, target, n, nhSet, costSD); err != nil {
			return err
		}
	}
	return nil
}

func isPrimaryNextHop(nhSet []string, n string) bool {
	for _, nh := range nhSet {
		if nh == n {
			return true
		}
	}
	return false
}

func (l *LFA) evaluateNeighbour(top *topology.Topology, s *spf.SPF, source, target, n string, nhSet []string, costSD int) error {
	if len(nhSet) == 0 {
		return nil
	}
	nh := nhSet[0] // all ECMP next hops share cost_S_nh implicitly via cost_SD; a representative suffices.

	costND, okND := s.PairCost(n, target)
	costNS, okNS := s.PairCost(n, source)
	costNnh, okNnh := s.PairCost(n, nh)
	costNhD, okNhD := s.PairCost(nh, target)
	if !okND || !okNS || !okNnh || !okNhD {
		return nil // any cost unavailable: skip this neighbour.
	}

	linkOK := costND < costNS+costSD
	downstreamOK := costND < costSD
	nodeCandidate := costND < costNnh+costNhD

	if !linkOK && !downstreamOK && !nodeCandidate {
		return nil
	}

	spfND := s.GetPathsBetween(n, target)
	nodeOverlapFree := nodeCandidate && !pathset.NodesOverlap(nhSet, spfND)

	for _, p := range spfND.Paths {
		nodes := make([]string, 0, len(p.Nodes)+1)
		nodes = append(nodes, source)
		nodes = append(nodes, p.Nodes...)

		base, err := pathset.NewNodePath(top, nodes)
		if err != nil {
			return err
		}

		if linkOK {
			cp := base.Clone()
			cp.Protection = cp.Protection.With(pathset.Link)
			if err := l.emit(source, target, cp); err != nil {
				return err
			}
		}
		if downstreamOK {
			cp := base.Clone()
			cp.Protection = cp.Protection.With(pathset.Downstream)
			if err := l.emit(source, target, cp); err != nil {
				return err
			}
		}
		if nodeOverlapFree {
			cp := base.Clone()
			cp.Protection = cp.Protection.With(pathset.Node)
			if err := l.emit(source, target, cp); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *LFA) emit(source, target string, np *pathset.NodePath) error {
	byTarget, ok := l.pairs[source]
	if !ok {
		byTarget = make(map[string]*pathset.NodePaths)
		l.pairs[source] = byTarget
	}
	ps, ok := byTarget[target]
	if !ok {
		ps = pathset.NewNodePaths(source, target)
		byTarget[target] = ps
	}
	if err := ps.Append(np); err != nil {
		return err
	}
	l.total++
	return nil
}

// GetPathsBetween returns the tagged LFA NodePaths from source to target,
// or an empty (but non-nil) NodePaths if none qualify.
func (l *LFA) GetPathsBetween(source, target string) *pathset.NodePaths {
	if byTarget, ok := l.pairs[source]; ok {
		if ps, ok := byTarget[target]; ok {
			return ps
		}
	}
	return pathset.NewNodePaths(source, target)
}

// Len returns the total tagged LFA path count across all pairs.
func (l *LFA) Len() int {
	return l.total
}
