// Package rlfa implements RFC 7490 remote loop-free alternates: for every
// ordered pair (S, D) it builds the P-space or extended P-space of S,
// intersects it with the Q-space of D, and assembles link- and
// node-protecting tunnels through the surviving PQ-nodes.
package rlfa

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/spf"
	"github.com/jwbensley/frrpaths/topology"
)

// SpaceMode selects how the candidate PQ-node set is built before
// intersecting with Q-space.
type SpaceMode int

const (
	// ModeEP is the extended P-space of S toward D (default).
	ModeEP SpaceMode = iota
	// ModeP is the plain P-space of S itself toward D.
	ModeP
)

// TromboneMode selects whether tunnels that re-visit a node on their
// descent to D (a "trombone") are permitted.
type TromboneMode int

const (
	// TromboneForbid discards trombone tunnels (default).
	TromboneForbid TromboneMode = iota
	// TromboneAllow keeps them.
	TromboneAllow
)

// Config holds the two orthogonal rLFA knobs (spec.md §4.6). The zero
// value is the spec's default: extended P-space, trombone forbidden.
type Config struct {
	SpaceMode SpaceMode
	Trombone  TromboneMode
}

// RLFA holds, for every (S, D) pair with at least one tunnel, the
// NodePaths collection of candidates. As with LFA, a given node sequence
// may appear twice — once link-protecting, once node-protecting.
type RLFA struct {
	pairs map[string]map[string]*pathset.NodePaths
	total int
}

// Compute evaluates RFC 7490 for every ordered pair of distinct nodes in
// top, using s as the precomputed SPF cost/path source.
func Compute(top *topology.Topology, s *spf.SPF, cfg Config, logger zerolog.Logger) (*RLFA, error) {
	r := &RLFA{pairs: make(map[string]map[string]*pathset.NodePaths)}

	for _, source := range top.Nodes() {
		for _, target := range top.Nodes() {
			if source == target {
				continue
			}
			if err := r.computePair(top, s, cfg, source, target); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug().Int("total_rlfa_paths", r.total).Msg("rlfa: computed all pairs")
	return r, nil
}

func (r *RLFA) computePair(top *topology.Topology, s *spf.SPF, cfg Config, source, target string) error {
	spfSD := s.GetPathsBetween(source, target)
	if spfSD.Len() == 0 {
		return nil // nothing to protect.
	}
	nhSet := spfSD.FirstHopNodes()
	if len(nhSet) == 0 {
		return nil
	}
	// The protected link is S's link toward its primary next hop. ECMP
	// first hops are all equally valid "E"s for space-membership purposes
	// (E only ever appears as an excluded candidate node); a single
	// representative is used, mirroring the lfa package's treatment of
	// ECMP next hops for cost lookups.
	protectedNextHop := nhSet[0]

	var candidates []string
	if cfg.SpaceMode == ModeP {
		candidates = pSpaceOf(top, s, source, source, protectedNextHop, target)
	} else {
		candidates = epSpaceOf(top, s, source, protectedNextHop, target)
	}

	qSet := qSpaceSet(top, s, source, protectedNextHop, target)
	pqNodes := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if _, ok := qSet[p]; ok {
			pqNodes = append(pqNodes, p)
		}
	}

	for _, q := range pqNodes {
		if isPrimaryNextHop(nhSet, q) {
			continue
		}
		if err := r.emitTunnels(top, s, nhSet, cfg, source, target, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *RLFA) emitTunnels(top *topology.Topology, s *spf.SPF, nhSet []string, cfg Config, source, target, q string) error {
	sp := s.GetPathsBetween(source, q)
	qd := s.GetPathsBetween(q, target)
	if sp.Len() == 0 || qd.Len() == 0 {
		return nil
	}
	if cfg.Trombone == TromboneForbid && trombones(sp, qd) {
		return nil
	}
	nodeProtecting := !pathset.NodesOverlap(nhSet, qd)

	for _, spPath := range sp.Paths {
		for _, qdPath := range qd.Paths {
			nodes := make([]string, 0, len(spPath.Nodes)-1+len(qdPath.Nodes))
			nodes = append(nodes, spPath.Nodes[:len(spPath.Nodes)-1]...)
			nodes = append(nodes, qdPath.Nodes...)

			base, err := pathset.NewNodePath(top, nodes)
			if errors.Is(err, pathset.ErrNotSimple) {
				// A revisited node means this particular (s_path, q_path)
				// combination tromboned even though the cheaper collection
				// -level check in trombones() missed it (or Trombone ==
				// TromboneAllow skipped that check entirely). A
				// non-simple sequence can never be a valid NodePath, so
				// this one combination is dropped rather than failing the
				// whole computation.
				continue
			}
			if err != nil {
				return err
			}

			link := base.Clone()
			link.Protection = link.Protection.With(pathset.Link)
			if err := r.emit(source, target, link); err != nil {
				return err
			}

			if nodeProtecting {
				node := base.Clone()
				node.Protection = node.Protection.With(pathset.Node)
				if err := r.emit(source, target, node); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// trombones reports whether any SP path (excluding its last node) shares
// a node with any QD path (excluding its first node) — spec.md §4.6.5
// step 3.
func trombones(sp, qd *pathset.NodePaths) bool {
	interior := make(map[string]struct{})
	for _, p := range sp.Paths {
		for _, n := range p.Nodes[:len(p.Nodes)-1] {
			interior[n] = struct{}{}
		}
	}
	for _, p := range qd.Paths {
		for _, n := range p.Nodes[1:] {
			if _, ok := interior[n]; ok {
				return true
			}
		}
	}
	return false
}

func isPrimaryNextHop(nhSet []string, n string) bool {
	for _, nh := range nhSet {
		if nh == n {
			return true
		}
	}
	return false
}

func (r *RLFA) emit(source, target string, np *pathset.NodePath) error {
	byTarget, ok := r.pairs[source]
	if !ok {
		byTarget = make(map[string]*pathset.NodePaths)
		r.pairs[source] = byTarget
	}
	ps, ok := byTarget[target]
	if !ok {
		ps = pathset.NewNodePaths(source, target)
		byTarget[target] = ps
	}
	if err := ps.Append(np); err != nil {
		return err
	}
	r.total++
	return nil
}

// GetPathsBetween returns the tagged rLFA NodePaths from source to
// target, or an empty (but non-nil) NodePaths if none qualify.
func (r *RLFA) GetPathsBetween(source, target string) *pathset.NodePaths {
	if byTarget, ok := r.pairs[source]; ok {
		if ps, ok := byTarget[target]; ok {
			return ps
		}
	}
	return pathset.NewNodePaths(source, target)
}

// Len returns the total tagged rLFA tunnel count across all pairs.
func (r *RLFA) Len() int {
	return r.total
}
