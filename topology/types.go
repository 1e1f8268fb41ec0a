// Package topology defines the in-memory undirected graph model: Node,
// Edge and Topology. Edges are weighted and optionally SID-tagged; parallel
// edges between the same pair of nodes are allowed internally. The
// topology is undirected when built through AddLink or FromJSON, which
// give every edge a companion in the opposite direction; AddDirectedEdge
// inserts a single half-edge and adds no companion.
//
// Topology is built once (typically via FromJSON) and is immutable for the
// lifetime of any facade built on top of it; this package does not support
// deleting nodes or edges because nothing in the FRR computation needs it.
package topology

import "errors"

// Sentinel errors for topology construction and lookup.
var (
	// ErrInvalidEdge indicates an edge endpoint that is not a node in the
	// topology.
	ErrInvalidEdge = errors.New("topology: invalid edge, endpoint not found")

	// ErrUnknownNode indicates a query against a node name the topology
	// does not contain.
	ErrUnknownNode = errors.New("topology: unknown node")

	// ErrSelfEdge indicates an edge whose local and remote ends are the
	// same node; a node is never its own neighbour.
	ErrSelfEdge = errors.New("topology: a node cannot be its own neighbour")

	// ErrNegativeWeight indicates a negative edge weight, which is never
	// valid in this model.
	ErrNegativeWeight = errors.New("topology: edge weight must be non-negative")
)

// Edge is a directed half-link from Local to Remote. Undirected semantics
// are enforced by the Topology: every Edge inserted via AddLink has a
// companion Edge in the opposite direction with the same Weight.
type Edge struct {
	Local  string
	Remote string
	Weight int
	AdjSID *int
}

// Node is identified by an opaque name and optionally carries a node SID.
// It holds, per neighbour, the ordered list of outgoing Edges toward that
// neighbour (more than one when the topology has parallel links), and a
// separate insertion-ordered list of neighbour names.
type Node struct {
	Name       string
	NodeSID    *int
	neighbours []string
	edges      map[string][]*Edge
}

func newNode(name string) *Node {
	return &Node{
		Name:  name,
		edges: make(map[string][]*Edge),
	}
}

// EdgesToward returns the ordered edge list from n to neighbour, or an
// empty slice if there is no such link. The returned slice is owned by the
// caller; mutating it does not affect the topology.
func (n *Node) EdgesToward(neighbour string) []*Edge {
	edges := n.edges[neighbour]
	out := make([]*Edge, len(edges))
	copy(out, edges)
	return out
}

// Neighbours returns n's neighbour names in insertion order.
func (n *Node) Neighbours() []string {
	out := make([]string, len(n.neighbours))
	copy(out, n.neighbours)
	return out
}

func (n *Node) addEdge(e *Edge) {
	if _, ok := n.edges[e.Remote]; !ok {
		n.neighbours = append(n.neighbours, e.Remote)
	}
	n.edges[e.Remote] = append(n.edges[e.Remote], e)
}

// Topology is a named collection of Nodes. Source records the originating
// file name for provenance only; it plays no role in computation.
type Topology struct {
	Source string
	nodes  map[string]*Node
	// order preserves insertion order of node names, so enumeration (and
	// therefore AllPaths DFS) is deterministic given deterministic input.
	order []string
}

// New returns an empty Topology with the given provenance source name.
func New(source string) *Topology {
	return &Topology{
		Source: source,
		nodes:  make(map[string]*Node),
	}
}
