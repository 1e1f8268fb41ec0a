package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const triangleJSON = `{
  "nodes": [ { "id": "A" }, { "id": "B" }, { "id": "C" } ],
  "links": [
    { "source": "A", "target": "B", "weight": 1 },
    { "source": "B", "target": "C", "weight": 1 },
    { "source": "A", "target": "C", "weight": 1 }
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.json")
	require.NoError(t, os.WriteFile(path, []byte(triangleJSON), 0o600))
	return path
}

func TestRootCmd_JSONOutput(t *testing.T) {
	path := writeFixture(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--json", path})
	require.NoError(t, cmd.Execute())

	var sum summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	require.Equal(t, 3, sum.Nodes)
	require.Equal(t, 6, sum.Edges) // 3 undirected links == 6 directed half-edges.
}

func TestRootCmd_TextOutput(t *testing.T) {
	path := writeFixture(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	require.Contains(t, out.String(), "nodes:      3")
}

func TestRootCmd_DotFlagWritesGraphviz(t *testing.T) {
	path := writeFixture(t)
	dotPath := filepath.Join(t.TempDir(), "out.dot")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dot", dotPath, path})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "\"A\"")
}

func TestRootCmd_MissingFileErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"/nonexistent/topology.json"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	require.Error(t, cmd.Execute())
}
