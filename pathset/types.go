// Package pathset holds the path primitives shared by every computation
// engine in this module: EdgePath/EdgePaths (sequences of topology.Edge,
// weight-ordered) and NodePath/NodePaths (simple sequences of node names,
// each carrying the full set of EdgePaths that realise it when the
// topology has parallel edges, plus a set of RFC 5286/7490 protection
// classifications).
package pathset

import (
	"errors"

	"github.com/jwbensley/frrpaths/topology"
)

// Sentinel errors.
var (
	// ErrEmptyPath indicates an attempt to build an EdgePath or NodePath
	// from zero elements.
	ErrEmptyPath = errors.New("pathset: path must be non-empty")

	// ErrDiscontiguous indicates consecutive edges in an EdgePath do not
	// chain: e[i].Remote != e[i+1].Local.
	ErrDiscontiguous = errors.New("pathset: edges do not form a contiguous path")

	// ErrNotSimple indicates a NodePath with a repeated node.
	ErrNotSimple = errors.New("pathset: node path repeats a node")

	// ErrEndpointMismatch indicates NodePaths.Append with a path whose
	// source/target differ from the collection's existing source/target.
	// Per spec.md §7 this is a fatal programmer error, surfaced immediately.
	ErrEndpointMismatch = errors.New("pathset: endpoint mismatch")

	// ErrNoEdge indicates an expansion step with no available edge between
	// two consecutive nodes.
	ErrNoEdge = errors.New("pathset: no edge between consecutive nodes")
)

// Protection is a bitset of RFC 5286/7490 repair classifications a
// NodePath may carry, held as one set value rather than three independent
// booleans. The zero value means no classification: NewNodePath returns
// paths with it, and AllPaths/SPF results keep it. Callers query it with
// the Is*/With* helpers below.
type Protection uint8

const (
	// Link marks a link-protecting alternate (RFC 5286 §1, RFC 7490 §5.2.1.1).
	Link Protection = 1 << iota
	// Downstream marks a downstream-protecting alternate (RFC 5286 §3.3).
	Downstream
	// Node marks a node-protecting alternate (RFC 5286 §1, RFC 7490 §5.2.1.2).
	Node
)

// IsLink, IsDownstream and IsNode report whether the corresponding flag is set.
func (p Protection) IsLink() bool       { return p&Link != 0 }
func (p Protection) IsDownstream() bool { return p&Downstream != 0 }
func (p Protection) IsNode() bool       { return p&Node != 0 }

// With returns p with flag added.
func (p Protection) With(flag Protection) Protection { return p | flag }

// EdgePath is a non-empty, contiguous sequence of topology edges:
// Edges[i].Remote == Edges[i+1].Local for every consecutive pair.
type EdgePath struct {
	Edges []*topology.Edge
}

// Weight returns the sum of the edge path's edge weights.
func (p *EdgePath) Weight() int {
	w := 0
	for _, e := range p.Edges {
		w += e.Weight
	}
	return w
}

// NewEdgePath validates and wraps edges into an EdgePath.
func NewEdgePath(edges []*topology.Edge) (*EdgePath, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyPath
	}
	for i := 0; i+1 < len(edges); i++ {
		if edges[i].Remote != edges[i+1].Local {
			return nil, ErrDiscontiguous
		}
	}
	cp := make([]*topology.Edge, len(edges))
	copy(cp, edges)
	return &EdgePath{Edges: cp}, nil
}

// EdgePaths is a collection of EdgePaths kept in non-decreasing weight
// order. The zero value is an empty, usable collection.
type EdgePaths struct {
	Paths []*EdgePath
}

// NodePath is a non-empty, simple (no repeated node) sequence of node
// names, with its Cartesian-product edge-path realisations and its
// protection classification.
type NodePath struct {
	Nodes      []string
	EdgePaths  *EdgePaths
	Protection Protection
}

// Weight is the weight of the NodePath's lowest-weight EdgePath, or 0 when
// the path has fewer than two nodes (no edges to weigh).
func (p *NodePath) Weight() int {
	if p.EdgePaths == nil || len(p.EdgePaths.Paths) == 0 {
		return 0
	}
	return p.EdgePaths.Paths[0].Weight()
}

// Source and Target return the path's first and last node.
func (p *NodePath) Source() string { return p.Nodes[0] }
func (p *NodePath) Target() string { return p.Nodes[len(p.Nodes)-1] }

// Clone returns a copy of p with an independent Nodes slice and the same
// Protection flags; EdgePaths is shared (read-only after construction).
func (p *NodePath) Clone() *NodePath {
	nodes := make([]string, len(p.Nodes))
	copy(nodes, p.Nodes)
	return &NodePath{Nodes: nodes, EdgePaths: p.EdgePaths, Protection: p.Protection}
}

// NodePaths is a collection of NodePaths constrained to a single
// (source, target) pair, kept in non-decreasing weight order.
type NodePaths struct {
	Source string
	Target string
	Paths  []*NodePath
}

// NewNodePaths returns an empty NodePaths collection for the given pair.
func NewNodePaths(source, target string) *NodePaths {
	return &NodePaths{Source: source, Target: target}
}

// Len returns the number of NodePaths in the collection.
func (ps *NodePaths) Len() int { return len(ps.Paths) }
