package topology

import "fmt"

// AddNode inserts a node named name if one does not already exist. It is a
// no-op, not an error, when the name is already present.
//
// Complexity: O(1)
func (t *Topology) AddNode(name string) *Node {
	if n, ok := t.nodes[name]; ok {
		return n
	}
	n := newNode(name)
	t.nodes[name] = n
	t.order = append(t.order, name)
	return n
}

// Node returns the node named name, or nil if it is not present.
func (t *Topology) Node(name string) *Node {
	return t.nodes[name]
}

// HasNode reports whether name is a node in the topology.
func (t *Topology) HasNode(name string) bool {
	_, ok := t.nodes[name]
	return ok
}

// Nodes returns the topology's node names in insertion order.
func (t *Topology) Nodes() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// NodeCount returns the number of nodes in the topology.
//
// Complexity: O(1)
func (t *Topology) NodeCount() int {
	return len(t.nodes)
}

// EdgeCount returns the number of directed half-edges in the topology. An
// undirected link between two distinct nodes counts as two (one per
// direction), matching the "no_of_edges" scenario in the facade's test
// fixture.
//
// Complexity: O(V) over the adjacency lists.
func (t *Topology) EdgeCount() int {
	n := 0
	for _, node := range t.nodes {
		for _, edges := range node.edges {
			n += len(edges)
		}
	}
	return n
}

// AddDirectedEdge inserts a single directed half-edge from local to remote.
// It fails with ErrInvalidEdge if either endpoint is not already a node in
// the topology, with ErrSelfEdge if local == remote, and with
// ErrNegativeWeight if weight < 0. Callers that want undirected semantics
// must also insert (or rely on FromJSON to insert) the companion edge.
//
// Complexity: O(1) amortized.
func (t *Topology) AddDirectedEdge(local, remote string, weight int, adjSID *int) error {
	if local == remote {
		return fmt.Errorf("%w: %s", ErrSelfEdge, local)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s->%s weight=%d", ErrNegativeWeight, local, remote, weight)
	}
	lnode, ok := t.nodes[local]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidEdge, local)
	}
	if _, ok = t.nodes[remote]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidEdge, remote)
	}
	lnode.addEdge(&Edge{Local: local, Remote: remote, Weight: weight, AdjSID: adjSID})
	return nil
}

// AddLink inserts an undirected link between local and remote: the forward
// edge local->remote, plus its companion remote->local with the same
// weight (the companion never carries adjSID unless the caller separately
// adds it — see FromJSON for how per-direction adj_sid is preserved).
//
// Complexity: O(1) amortized.
func (t *Topology) AddLink(local, remote string, weight int, adjSID *int) error {
	if err := t.AddDirectedEdge(local, remote, weight, adjSID); err != nil {
		return err
	}
	return t.AddDirectedEdge(remote, local, weight, nil)
}
