package topology

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// flexString decodes a JSON string or number into a Go string, coercing
// integer ids to their decimal form (spec.md §6: "id/source/target are
// strings; integer forms are coerced to strings"), mirroring
// pypaths/node.py's str(node["id"]).
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = flexString(num.String())
		return nil
	}
	return fmt.Errorf("topology: id/source/target must be a string or number, got %s", data)
}

// wireNode and wireLink mirror the external JSON schema from spec.md §6.
// There is no ecosystem library in the retrieval pack for this
// document-shaped schema, so this file uses the standard library's
// encoding/json directly — a boundary concern, not a core algorithm.
type wireNode struct {
	ID      flexString `json:"id"`
	NodeSID *int       `json:"node_sid,omitempty"`
}

type wireLink struct {
	Source flexString `json:"source"`
	Target flexString `json:"target"`
	Weight *int       `json:"weight,omitempty"`
	AdjSID *int       `json:"adj_sid,omitempty"`
}

type wireDoc struct {
	Directed   *bool      `json:"directed,omitempty"`
	Multigraph *bool      `json:"multigraph,omitempty"`
	Nodes      []wireNode `json:"nodes"`
	Links      []wireLink `json:"links"`
}

type pairKey struct{ a, b string }

// FromJSON parses an external topology document. Malformed links (an
// endpoint not present in the node list) are logged at error level and
// skipped, per spec.md §4.1/§7 ("Invalid Topology" is non-fatal); a
// malformed document (bad JSON, directed/multigraph set true) is fatal and
// returned as an error, per the "IO/Parse" row of spec.md §7.
//
// Links appearing in only one direction are mirrored: a companion edge in
// the opposite direction is synthesized with the same weight and the same
// adj_sid as the original link.
func FromJSON(data []byte, source string, logger zerolog.Logger) (*Topology, error) {
	var doc wireDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("topology: parse %s: %w", source, err)
	}
	if doc.Directed != nil && *doc.Directed {
		return nil, fmt.Errorf("topology: %s: directed topologies are not supported", source)
	}
	if doc.Multigraph != nil && *doc.Multigraph {
		return nil, fmt.Errorf("topology: %s: multigraph topologies are not supported", source)
	}

	t := New(source)
	for _, wn := range doc.Nodes {
		id := string(wn.ID)
		if id == "" {
			logger.Error().Msg("topology: skipping node with empty id")
			continue
		}
		n := t.AddNode(id)
		n.NodeSID = wn.NodeSID
	}

	seen := make(map[pairKey]int, len(doc.Links))
	type pending struct {
		source, target string
		weight         int
		adjSID         *int
	}
	links := make([]pending, 0, len(doc.Links))
	for _, wl := range doc.Links {
		weight := 0
		if wl.Weight != nil {
			weight = *wl.Weight
		}
		source, target := string(wl.Source), string(wl.Target)
		if !t.HasNode(source) || !t.HasNode(target) {
			logger.Error().
				Str("source", source).
				Str("target", target).
				Msg("topology: skipping link with unknown endpoint")
			continue
		}
		if err := t.AddDirectedEdge(source, target, weight, wl.AdjSID); err != nil {
			logger.Error().Err(err).Msg("topology: skipping invalid link")
			continue
		}
		seen[pairKey{source, target}]++
		links = append(links, pending{source, target, weight, wl.AdjSID})
	}

	// Mirror every link that has no companion in the original document.
	for _, l := range links {
		if seen[pairKey{l.target, l.source}] > 0 {
			continue
		}
		if err := t.AddDirectedEdge(l.target, l.source, l.weight, l.adjSID); err != nil {
			logger.Error().Err(err).Msg("topology: failed to synthesize mirror link")
		}
	}

	return t, nil
}

// ToJSON serialises t back into the external schema. Node order and link
// order are implementation-defined; this implementation emits both in
// topology insertion order, and emits every directed half-edge once (so a
// two-way undirected link appears as two links), which keeps the output a
// faithful FromJSON(ToJSON(t)) round trip of the undirected edge multiset.
func (t *Topology) ToJSON() ([]byte, error) {
	doc := wireDoc{Nodes: make([]wireNode, 0, len(t.order))}
	for _, name := range t.order {
		n := t.nodes[name]
		doc.Nodes = append(doc.Nodes, wireNode{ID: flexString(n.Name), NodeSID: n.NodeSID})
	}
	for _, name := range t.order {
		n := t.nodes[name]
		for _, nbr := range n.neighbours {
			for _, e := range n.edges[nbr] {
				w := e.Weight
				doc.Links = append(doc.Links, wireLink{
					Source: flexString(e.Local),
					Target: flexString(e.Remote),
					Weight: &w,
					AdjSID: e.AdjSID,
				})
			}
		}
	}
	return json.Marshal(doc)
}
