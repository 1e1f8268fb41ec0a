package rlfa

import (
	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/spf"
	"github.com/jwbensley/frrpaths/topology"
)

// pSpaceOf computes P(root; protectedLocal->protectedRemote->dest) per
// spec.md §4.6.1, in topology node order.
func pSpaceOf(top *topology.Topology, s *spf.SPF, root, protectedLocal, protectedRemote, dest string) []string {
	rootToDest := s.GetPathsBetween(root, dest)
	nhRD := rootToDest.FirstHopNodes()
	if len(nhRD) == 0 {
		return nil
	}

	firstHopCost, ok := minCostFromMany(s, root, nhRD)
	if !ok {
		return nil
	}

	var space []string
	for _, p := range top.Nodes() {
		if p == root || p == protectedLocal || p == protectedRemote {
			continue
		}
		if pathset.NodesOverlap([]string{protectedLocal}, s.GetPathsBetween(p, dest)) {
			continue
		}

		costRP, ok := s.PairCost(root, p)
		if !ok {
			continue
		}
		minFhToP, ok := minCostToMany(s, nhRD, p)
		if !ok {
			continue
		}
		if costRP < firstHopCost+minFhToP {
			space = append(space, p)
		}
	}
	return space
}

// epSpaceOf computes the extended P-space of protectedLocal toward dest
// per spec.md §4.6.2: the union, over every neighbour N of protectedLocal
// (N != dest), of the members of P(N; ...) that also satisfy the "won't
// loop back through S" condition. Order is preserved, first occurrence
// wins, duplicates are dropped.
func epSpaceOf(top *topology.Topology, s *spf.SPF, protectedLocal, protectedRemote, dest string) []string {
	local := top.Node(protectedLocal)
	if local == nil {
		return nil
	}

	costSD, ok := s.PairCost(protectedLocal, dest)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var space []string
	for _, n := range local.Neighbours() {
		if n == dest {
			continue
		}
		costNS, okNS := s.PairCost(n, protectedLocal)
		if !okNS {
			continue
		}

		for _, p := range pSpaceOf(top, s, n, protectedLocal, protectedRemote, dest) {
			costNP, okNP := s.PairCost(n, p)
			costDP, okDP := s.PairCost(dest, p)
			if !okNP || !okDP {
				continue
			}
			if costNP >= costNS+costSD+costDP {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			space = append(space, p)
		}
	}
	return space
}

// qSpaceSet computes Q(dest; protectedLocal->protectedRemote) per
// spec.md §4.6.3, as a membership set (PQ intersection doesn't care
// about Q-space order, only the EP/P order feeding it).
func qSpaceSet(top *topology.Topology, s *spf.SPF, protectedLocal, protectedRemote, dest string) map[string]struct{} {
	costSD, ok := s.PairCost(protectedLocal, dest)
	if !ok {
		return nil
	}

	set := make(map[string]struct{})
	for _, source := range top.Nodes() {
		if source == protectedLocal || source == dest {
			continue
		}
		costQD, okQD := s.PairCost(source, dest)
		costQS, okQS := s.PairCost(source, protectedLocal)
		if !okQD || !okQS {
			continue
		}
		if costQD < costQS+costSD {
			set[source] = struct{}{}
		}
	}
	return set
}

func minCostFromMany(s *spf.SPF, from string, to []string) (int, bool) {
	best := 0
	found := false
	for _, t := range to {
		c, ok := s.PairCost(from, t)
		if !ok {
			continue
		}
		if !found || c < best {
			best = c
			found = true
		}
	}
	return best, found
}

func minCostToMany(s *spf.SPF, from []string, to string) (int, bool) {
	best := 0
	found := false
	for _, f := range from {
		c, ok := s.PairCost(f, to)
		if !ok {
			continue
		}
		if !found || c < best {
			best = c
			found = true
		}
	}
	return best, found
}
