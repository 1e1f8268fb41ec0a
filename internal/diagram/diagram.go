// Package diagram renders a topology.Topology as Graphviz DOT text and,
// optionally, pipes it through the external "dot" binary to produce a
// PNG. This is the module's one defined wire contract with an external
// graph-layout tool (spec.md §6); neither contract lives in the
// topology package itself.
package diagram

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/awalterschulze/gographviz"

	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/topology"
)

const highlightColor = "red"

// Generate builds DOT text for top. If highlight is non-nil, the nodes
// and edges on that path are styled in highlightColor so a single
// repair candidate can be visually distinguished from the base graph.
func Generate(top *topology.Topology, highlight *pathset.NodePath) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("topology"); err != nil {
		return "", fmt.Errorf("diagram: set name: %w", err)
	}
	if err := g.SetDir(false); err != nil {
		return "", fmt.Errorf("diagram: set dir: %w", err)
	}

	onPath := make(map[string]bool)
	if highlight != nil {
		for _, n := range highlight.Nodes {
			onPath[n] = true
		}
	}

	for _, name := range top.Nodes() {
		attrs := map[string]string{}
		if onPath[name] {
			attrs["color"] = highlightColor
			attrs["penwidth"] = "2"
		}
		if err := g.AddNode("topology", quoted(name), attrs); err != nil {
			return "", fmt.Errorf("diagram: add node %s: %w", name, err)
		}
	}

	highlighted := highlightEdges(highlight)
	seen := make(map[[2]string]bool)
	for _, name := range top.Nodes() {
		node := top.Node(name)
		for _, neighbour := range node.Neighbours() {
			key := edgeKey(name, neighbour)
			if seen[key] {
				continue
			}
			seen[key] = true

			for _, e := range node.EdgesToward(neighbour) {
				attrs := map[string]string{
					"label": fmt.Sprintf("%d", e.Weight),
				}
				if highlighted[key] {
					attrs["color"] = highlightColor
					attrs["penwidth"] = "2"
				}
				if err := g.AddEdge(quoted(e.Local), quoted(e.Remote), false, attrs); err != nil {
					return "", fmt.Errorf("diagram: add edge %s-%s: %w", e.Local, e.Remote, err)
				}
			}
		}
	}

	return g.String(), nil
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func highlightEdges(p *pathset.NodePath) map[[2]string]bool {
	out := make(map[[2]string]bool)
	if p == nil {
		return out
	}
	for i := 0; i+1 < len(p.Nodes); i++ {
		out[edgeKey(p.Nodes[i], p.Nodes[i+1])] = true
	}
	return out
}

func quoted(s string) string {
	return `"` + s + `"`
}

// RenderPNG pipes dot's DOT text through the external "dot" binary and
// writes the resulting PNG to outPath.
func RenderPNG(ctx context.Context, dot string, outPath string) error {
	cmd := exec.CommandContext(ctx, "dot", "-Tpng", "-o", outPath)
	cmd.Stdin = bytes.NewBufferString(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("diagram: dot: %w: %s", err, stderr.String())
	}
	return nil
}
