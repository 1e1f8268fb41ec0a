package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwbensley/frrpaths/internal/diagram"
	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/topology"
)

func triangle(t *testing.T) *topology.Topology {
	t.Helper()
	tp := topology.New("mem")
	for _, n := range []string{"A", "B", "C"} {
		tp.AddNode(n)
	}
	require.NoError(t, tp.AddLink("A", "B", 1, nil))
	require.NoError(t, tp.AddLink("B", "C", 2, nil))
	require.NoError(t, tp.AddLink("A", "C", 3, nil))
	return tp
}

func TestGenerate_ContainsAllNodesAndEdges(t *testing.T) {
	tp := triangle(t)
	dot, err := diagram.Generate(tp, nil)
	require.NoError(t, err)

	for _, n := range []string{"A", "B", "C"} {
		require.Contains(t, dot, `"`+n+`"`)
	}
	require.Contains(t, dot, "--") // undirected edge syntax
}

func TestGenerate_HighlightsOverlayPath(t *testing.T) {
	tp := triangle(t)
	np, err := pathset.NewNodePath(tp, []string{"A", "B", "C"})
	require.NoError(t, err)

	dot, err := diagram.Generate(tp, np)
	require.NoError(t, err)
	require.True(t, strings.Contains(dot, "red"))
}
