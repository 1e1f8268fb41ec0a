package topology_test

import (
	"encoding/json"
	"os"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jwbensley/frrpaths/topology"
)

func loadMesh(t *testing.T) *topology.Topology {
	t.Helper()
	data, err := os.ReadFile("../testdata/mesh.json")
	require.NoError(t, err)
	tp, err := topology.FromJSON(data, "mesh.json", zerolog.Nop())
	require.NoError(t, err)
	return tp
}

func TestFromJSON_MeshShape(t *testing.T) {
	tp := loadMesh(t)
	require.Equal(t, 10, tp.NodeCount())
	require.Equal(t, 24, tp.EdgeCount()) // 12 undirected links, mirrored to 24 directed half-edges
	require.Empty(t, tp.Node("P5").Neighbours(), "P5 is the isolated node in the fixture")
}

func TestFromJSON_MirrorsOneDirectionLinks(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id":"A"},{"id":"B"}],
		"links": [{"source":"A","target":"B","weight":7,"adj_sid":42}]
	}`)
	tp, err := topology.FromJSON(data, "mem", zerolog.Nop())
	require.NoError(t, err)

	fwd := tp.Node("A").EdgesToward("B")
	rev := tp.Node("B").EdgesToward("A")
	require.Len(t, fwd, 1)
	require.Len(t, rev, 1)
	require.Equal(t, 7, rev[0].Weight)
	require.NotNil(t, rev[0].AdjSID)
	require.Equal(t, 42, *rev[0].AdjSID)
}

func TestFromJSON_CoercesNumericIdentifiers(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id":1},{"id":2}],
		"links": [{"source":1,"target":2,"weight":3}]
	}`)
	tp, err := topology.FromJSON(data, "mem", zerolog.Nop())
	require.NoError(t, err)

	require.True(t, tp.HasNode("1"))
	require.True(t, tp.HasNode("2"))
	fwd := tp.Node("1").EdgesToward("2")
	require.Len(t, fwd, 1)
	require.Equal(t, 3, fwd[0].Weight)
}

func TestFromJSON_RejectsDirected(t *testing.T) {
	data := []byte(`{"directed": true, "nodes": [], "links": []}`)
	_, err := topology.FromJSON(data, "mem", zerolog.Nop())
	require.Error(t, err)
}

func TestFromJSON_SkipsInvalidLink(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id":"A"}],
		"links": [{"source":"A","target":"Ghost","weight":1}]
	}`)
	tp, err := topology.FromJSON(data, "mem", zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 0, tp.EdgeCount())
}

// nodeSet and linkSet build order-independent multiset views of a wire
// document's nodes and undirected links for round-trip comparison.
func nodeSet(t *testing.T, data []byte) []string {
	t.Helper()
	var doc struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	out := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		out = append(out, n.ID)
	}
	sort.Strings(out)
	return out
}

func linkSet(t *testing.T, data []byte) []string {
	t.Helper()
	var doc struct {
		Links []struct {
			Source string `json:"source"`
			Target string `json:"target"`
			Weight int    `json:"weight"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	out := make([]string, 0, len(doc.Links))
	for _, l := range doc.Links {
		a, b := l.Source, l.Target
		if a > b {
			a, b = b, a
		}
		out = append(out, a+"|"+b)
	}
	sort.Strings(out)
	return out
}

func TestRoundTrip_FromJSONToJSON(t *testing.T) {
	original, err := os.ReadFile("../testdata/mesh.json")
	require.NoError(t, err)

	tp, err := topology.FromJSON(original, "mesh.json", zerolog.Nop())
	require.NoError(t, err)

	encoded, err := tp.ToJSON()
	require.NoError(t, err)

	tp2, err := topology.FromJSON(encoded, "mesh.json", zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, nodeSet(t, original), nodeSet(t, encoded))
	require.Equal(t, tp.NodeCount(), tp2.NodeCount())
	require.Equal(t, tp.EdgeCount(), tp2.EdgeCount())

	encoded2, err := tp2.ToJSON()
	require.NoError(t, err)
	require.Equal(t, linkSet(t, encoded), linkSet(t, encoded2))
}
