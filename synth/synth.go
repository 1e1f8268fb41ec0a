// Package synth builds deterministic synthetic topologies from composable
// Constructors, the same BuildGraph(gopts, bopts, cons...) shape the
// teacher's builder package uses to assemble test fixtures — adapted here
// to emit a topology.Topology instead of a generic graph, since this
// module's topologies carry FRR-specific attributes (weights, adj SIDs)
// that have no analogue in a generic graph builder.
package synth

import (
	"fmt"

	"github.com/jwbensley/frrpaths/topology"
)

// ErrTooFewNodes mirrors the teacher builder's own domain validation: a
// constructor whose shape requires a minimum node count rejects anything
// smaller immediately rather than emitting a degenerate graph.
var ErrTooFewNodes = fmt.Errorf("synth: too few nodes requested")

// Constructor applies one deterministic mutation to a Topology under
// construction. Constructors must validate their own parameters and
// return an error rather than panic.
type Constructor func(t *topology.Topology) error

// Build creates a new Topology with the given provenance source and
// applies every constructor in order, matching spec.md §4.1's insertion
// ordering guarantees exactly (id scheme fixed at "n0".."n{k-1}").
func Build(source string, cons ...Constructor) (*topology.Topology, error) {
	t := topology.New(source)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("synth: nil constructor at index %d", i)
		}
		if err := c(t); err != nil {
			return nil, fmt.Errorf("synth: %w", err)
		}
	}
	return t, nil
}

// id returns the deterministic node name for index i.
func id(i int) string {
	return fmt.Sprintf("n%d", i)
}

func addNodes(t *topology.Topology, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = id(i)
		t.AddNode(ids[i])
	}
	return ids
}

// Complete returns a Constructor building the complete simple graph K_n
// with every edge weighted w.
func Complete(n, w int) Constructor {
	return func(t *topology.Topology) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewNodes)
		}
		ids := addNodes(t, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := t.AddLink(ids[i], ids[j], w, nil); err != nil {
					return fmt.Errorf("Complete: AddLink(%s,%s): %w", ids[i], ids[j], err)
				}
			}
		}
		return nil
	}
}

// Ring returns a Constructor building an n-node simple cycle with every
// edge weighted w.
func Ring(n, w int) Constructor {
	return func(t *topology.Topology) error {
		if n < 3 {
			return fmt.Errorf("Ring: n=%d: %w", n, ErrTooFewNodes)
		}
		ids := addNodes(t, n)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err := t.AddLink(ids[i], ids[j], w, nil); err != nil {
				return fmt.Errorf("Ring: AddLink(%s,%s): %w", ids[i], ids[j], err)
			}
		}
		return nil
	}
}

// Star returns a Constructor building an n-node star (ids[0] is the hub)
// with every spoke weighted w.
func Star(n, w int) Constructor {
	return func(t *topology.Topology) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewNodes)
		}
		ids := addNodes(t, n)
		for i := 1; i < n; i++ {
			if err := t.AddLink(ids[0], ids[i], w, nil); err != nil {
				return fmt.Errorf("Star: AddLink(%s,%s): %w", ids[0], ids[i], err)
			}
		}
		return nil
	}
}
