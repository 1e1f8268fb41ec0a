package pathset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwbensley/frrpaths/pathset"
	"github.com/jwbensley/frrpaths/topology"
)

func mkTopo(t *testing.T) *topology.Topology {
	t.Helper()
	tp := topology.New("mem")
	for _, n := range []string{"A", "B", "C"} {
		tp.AddNode(n)
	}
	require.NoError(t, tp.AddLink("A", "B", 1, nil))
	require.NoError(t, tp.AddLink("B", "C", 2, nil))
	return tp
}

func TestNewNodePath(t *testing.T) {
	tests := []struct {
		name          string
		nodes         []string
		wantErr       error
		wantWeight    int
		wantEdgePaths int
	}{
		{
			name:          "simple expansion",
			nodes:         []string{"A", "B", "C"},
			wantWeight:    3,
			wantEdgePaths: 1,
		},
		{
			name:    "rejects repeated node",
			nodes:   []string{"A", "B", "A"},
			wantErr: pathset.ErrNotSimple,
		},
		{
			name:          "single node has zero weight",
			nodes:         []string{"A"},
			wantWeight:    0,
			wantEdgePaths: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tp := mkTopo(t)
			np, err := pathset.NewNodePath(tp, tt.nodes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantWeight, np.Weight())
			require.Len(t, np.EdgePaths.Paths, tt.wantEdgePaths)
		})
	}
}

func TestExpandToEdgePaths_ParallelEdgesCartesianProduct(t *testing.T) {
	tests := []struct {
		name        string
		abWeights   []int
		bcWeights   []int
		wantWeights []int
	}{
		{
			name:        "2x2 parallel edges",
			abWeights:   []int{1, 3},
			bcWeights:   []int{1, 5},
			wantWeights: []int{2, 4, 6, 8},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tp := topology.New("mem")
			for _, n := range []string{"A", "B", "C"} {
				tp.AddNode(n)
			}
			for _, w := range tt.abWeights {
				require.NoError(t, tp.AddDirectedEdge("A", "B", w, nil))
			}
			for _, w := range tt.bcWeights {
				require.NoError(t, tp.AddDirectedEdge("B", "C", w, nil))
			}

			np, err := pathset.NewNodePath(tp, []string{"A", "B", "C"})
			require.NoError(t, err)
			require.Len(t, np.EdgePaths.Paths, len(tt.wantWeights))

			weights := make([]int, len(np.EdgePaths.Paths))
			for i, p := range np.EdgePaths.Paths {
				weights[i] = p.Weight()
			}
			require.Equal(t, tt.wantWeights, weights)
		})
	}
}

func TestEdgePaths_InsertKeepsStableOrder(t *testing.T) {
	tp := mkTopo(t)
	e1 := tp.Node("A").EdgesToward("B")[0]
	e2 := tp.Node("B").EdgesToward("C")[0]
	p1, err := pathset.NewEdgePath([]*topology.Edge{e1})
	require.NoError(t, err)
	p2, err := pathset.NewEdgePath([]*topology.Edge{e2})
	require.NoError(t, err)

	eps := &pathset.EdgePaths{}
	eps.Insert(p2) // weight 2
	eps.Insert(p1) // weight 1, should land first
	require.Equal(t, p1, eps.Paths[0])
	require.Equal(t, p2, eps.Paths[1])

	e3 := tp.Node("B").EdgesToward("A")[0]
	p3, err := pathset.NewEdgePath([]*topology.Edge{e3})
	require.NoError(t, err)
	eps.Insert(p3) // weight 1, ties with p1: lands after p1, before p2
	require.Equal(t, []*pathset.EdgePath{p1, p3, p2}, eps.Paths)
}

func TestNodePaths_AppendRejectsEndpointMismatch(t *testing.T) {
	tp := mkTopo(t)
	np, err := pathset.NewNodePath(tp, []string{"A", "B", "C"})
	require.NoError(t, err)

	ps := pathset.NewNodePaths("A", "C")
	require.NoError(t, ps.Append(np))

	wrong, err := pathset.NewNodePath(tp, []string{"A", "B"})
	require.NoError(t, err)
	err = ps.Append(wrong)
	require.ErrorIs(t, err, pathset.ErrEndpointMismatch)
}

func TestNodePaths_FirstHopNodes(t *testing.T) {
	tests := []struct {
		name  string
		paths [][]string
		want  []string
	}{
		{
			name: "dedup order preserving",
			paths: [][]string{
				{"A", "B", "D"},
				{"A", "C", "D"},
				{"A", "B", "X", "D"},
			},
			want: []string{"B", "C"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ps := pathset.NewNodePaths("A", "D")
			for _, nodes := range tt.paths {
				ps.Paths = append(ps.Paths, &pathset.NodePath{Nodes: nodes})
			}
			require.Equal(t, tt.want, ps.FirstHopNodes())
		})
	}
}

func TestDiscontiguousEdgePathRejected(t *testing.T) {
	tp := mkTopo(t)
	e1 := tp.Node("A").EdgesToward("B")[0]
	e2 := tp.Node("B").EdgesToward("C")[0]
	_, err := pathset.NewEdgePath([]*topology.Edge{e2, e1})
	require.ErrorIs(t, err, pathset.ErrDiscontiguous)
}
