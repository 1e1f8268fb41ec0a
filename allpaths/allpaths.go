// Package allpaths enumerates every simple path between every ordered pair
// of nodes in a topology, via depth-first search with an explicit visited
// set (the current path itself). It is the base layer every other
// computation engine in this module is derived from.
package allpaths

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/topology"
)

// AllPaths holds, for every ordered pair (S, D) with a simple path between
// them, the full NodePaths collection. Pairs with no path at all are
// simply absent from the map; GetPathsBetween still returns a valid empty
// NodePaths for them.
type AllPaths struct {
	top   *topology.Topology
	pairs map[string]map[string]*pathset.NodePaths
	total int
}

// Compute enumerates all simple paths for every ordered pair of distinct
// nodes in top. One DFS walk runs per source node; every extension of the
// current path is recorded as a completed path to whichever node it now
// ends at, which captures all pairs reachable from that source in a
// single traversal. Enumeration order follows each node's insertion-order
// neighbour list, so the result is deterministic given deterministic
// input, per spec.md §4.3. This engine never caps enumeration: dense
// topologies may legitimately produce tens of thousands of paths.
func Compute(top *topology.Topology, logger zerolog.Logger) (*AllPaths, error) {
	ap := &AllPaths{
		top:   top,
		pairs: make(map[string]map[string]*pathset.NodePaths),
	}

	for _, s := range top.Nodes() {
		if err := ap.walkFrom(s); err != nil {
			return nil, fmt.Errorf("allpaths: source %s: %w", s, err)
		}
	}

	logger.Debug().Int("total_paths", ap.total).Msg("allpaths: enumeration complete")
	return ap, nil
}

// walkFrom runs the DFS rooted at s, recording every simple path from s.
// current and visited are mutated in place and restored to their entry
// state on every return path, mirroring the push/pop discipline required
// by spec.md §9.
func (ap *AllPaths) walkFrom(s string) error {
	visited := map[string]bool{s: true}
	current := []string{s}

	var visit func(last string) error
	visit = func(last string) error {
		node := ap.top.Node(last)
		if node == nil {
			return fmt.Errorf("%w: %s", topology.ErrUnknownNode, last)
		}
		for _, nbr := range node.Neighbours() {
			if visited[nbr] {
				continue
			}
			current = append(current, nbr)
			visited[nbr] = true

			np, err := pathset.NewNodePath(ap.top, current)
			if err != nil {
				visited[nbr] = false
				current = current[:len(current)-1]
				return err
			}
			ap.record(s, nbr, np)

			if err := visit(nbr); err != nil {
				visited[nbr] = false
				current = current[:len(current)-1]
				return err
			}

			visited[nbr] = false
			current = current[:len(current)-1]
		}
		return nil
	}

	return visit(s)
}

func (ap *AllPaths) record(source, target string, np *pathset.NodePath) {
	byTarget, ok := ap.pairs[source]
	if !ok {
		byTarget = make(map[string]*pathset.NodePaths)
		ap.pairs[source] = byTarget
	}
	ps, ok := byTarget[target]
	if !ok {
		ps = pathset.NewNodePaths(source, target)
		byTarget[target] = ps
	}
	// NewNodePath already validated the endpoints match the walk; Append
	// cannot fail here short of a programming error.
	_ = ps.Append(np)
	ap.total++
}

// GetPathsBetween returns the NodePaths from source to target, or an
// empty (but non-nil) NodePaths if the pair is disconnected or either
// name is unused in the topology.
func (ap *AllPaths) GetPathsBetween(source, target string) *pathset.NodePaths {
	if byTarget, ok := ap.pairs[source]; ok {
		if ps, ok := byTarget[target]; ok {
			return ps
		}
	}
	return pathset.NewNodePaths(source, target)
}

// GetPathsFrom returns every target reachable from source, mapped to its
// NodePaths.
func (ap *AllPaths) GetPathsFrom(source string) map[string]*pathset.NodePaths {
	out := make(map[string]*pathset.NodePaths, len(ap.pairs[source]))
	for target, ps := range ap.pairs[source] {
		out[target] = ps
	}
	return out
}

// Len returns the total path count across all pairs.
func (ap *AllPaths) Len() int {
	return ap.total
}

// Sources returns the node names that have at least one outgoing simple
// path, in topology insertion order.
func (ap *AllPaths) Sources() []string {
	out := make([]string, 0, len(ap.pairs))
	for _, s := range ap.top.Nodes() {
		if _, ok := ap.pairs[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
