package pathset

import (
	"fmt"

	"github.com/jwbensley/frrpaths/topology"
)

// NewNodePath validates nodes as a simple node sequence, expands it into
// every realising EdgePath (the Cartesian product of per-step parallel
// edges, per spec.md §4.2), and returns the resulting NodePath with no
// protection flags set.
func NewNodePath(top *topology.Topology, nodes []string) (*NodePath, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyPath
	}
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			return nil, fmt.Errorf("%w: %s", ErrNotSimple, n)
		}
		seen[n] = struct{}{}
	}

	eps, err := expandToEdgePaths(top, nodes)
	if err != nil {
		return nil, err
	}

	cp := make([]string, len(nodes))
	copy(cp, nodes)
	return &NodePath{Nodes: cp, EdgePaths: eps}, nil
}

// expandToEdgePaths enumerates, via DFS over a shared partial-path stack,
// every EdgePath that realises the node sequence nodes. At each step i it
// chooses one edge from nodes[i].EdgesToward(nodes[i+1]) and recurses;
// a complete traversal appends one EdgePath to the result. The recursion
// pushes exactly one edge onto current before recursing and pops exactly
// one edge on every return path (error, dead-end, or success), so current
// is restored to its entry state after every call — the invariant called
// out in spec.md §9.
//
// A node sequence of fewer than two nodes has no edges to choose and
// yields an empty EdgePaths (NodePath.Weight() then reports 0).
func expandToEdgePaths(top *topology.Topology, nodes []string) (*EdgePaths, error) {
	eps := &EdgePaths{}
	if len(nodes) < 2 {
		return eps, nil
	}

	current := make([]*topology.Edge, 0, len(nodes)-1)
	used := make(map[*topology.Edge]struct{}, len(nodes)-1)

	var walk func(step int) error
	walk = func(step int) error {
		if step == len(nodes)-1 {
			path, err := NewEdgePath(current)
			if err != nil {
				return err
			}
			eps.Insert(path)
			return nil
		}

		from := top.Node(nodes[step])
		if from == nil {
			return fmt.Errorf("%w: %s", topology.ErrUnknownNode, nodes[step])
		}
		options := from.EdgesToward(nodes[step+1])
		if len(options) == 0 {
			return fmt.Errorf("%w: %s->%s", ErrNoEdge, nodes[step], nodes[step+1])
		}

		for _, e := range options {
			// Defensive: a simple node path cannot reuse an edge, but skip
			// any edge already chosen earlier on this branch regardless.
			if _, dup := used[e]; dup {
				continue
			}
			current = append(current, e)
			used[e] = struct{}{}

			if err := walk(step + 1); err != nil {
				current = current[:len(current)-1]
				delete(used, e)
				return err
			}

			current = current[:len(current)-1]
			delete(used, e)
		}
		return nil
	}

	if err := walk(0); err != nil {
		return nil, err
	}
	return eps, nil
}
