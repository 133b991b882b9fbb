package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphOf builds a graph from "from>to" edges; nodes are added as needed.
func graphOf(t *testing.T, nodes []string, edges ...[2]string) *Graph {
	t.Helper()
	g := New()
	for _, id := range nodes {
		g.AddNode(id)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestGraph_AddNodeIsIdempotent(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.Len())

	g.AddNode("outline")
	g.AddNode("outline")
	g.AddNode("slab")

	assert.Equal(t, 2, g.Len())
	outline := g.nodes["outline"]
	require.NotNil(t, outline)
	assert.Equal(t, "outline", outline.id)
	assert.Empty(t, outline.deps)
	assert.Empty(t, outline.dependents)
}

func TestGraph_AddEdge(t *testing.T) {
	// --- Arrange ---
	g := graphOf(t, []string{"outline", "slab"})

	// --- Act ---
	err := g.AddEdge("outline", "slab")

	// --- Assert ---
	require.NoError(t, err)
	assert.Same(t, g.nodes["slab"], g.nodes["outline"].dependents["slab"])
	assert.Same(t, g.nodes["outline"], g.nodes["slab"].deps["outline"])

	assert.ErrorContains(t, g.AddEdge("roof", "slab"), "source node not found")
	assert.ErrorContains(t, g.AddEdge("slab", "roof"), "destination node not found")

	var cycle *CycleError
	require.ErrorAs(t, g.AddEdge("slab", "slab"), &cycle)
	assert.Equal(t, []string{"slab", "slab"}, cycle.Path)
}

func TestGraph_DetectCycles(t *testing.T) {
	testCases := []struct {
		name    string
		nodes   []string
		edges   [][2]string
		wantErr string
	}{
		{name: "empty"},
		{name: "isolated nodes", nodes: []string{"a", "b", "c"}},
		{
			name:  "diamond",
			nodes: []string{"hole", "outline", "cut", "slab"},
			edges: [][2]string{{"hole", "outline"}, {"hole", "cut"}, {"outline", "slab"}, {"cut", "slab"}},
		},
		{
			name:    "two node cycle",
			nodes:   []string{"a", "b"},
			edges:   [][2]string{{"a", "b"}, {"b", "a"}},
			wantErr: "cycle detected: a -> b -> a",
		},
		{
			name:    "long cycle",
			nodes:   []string{"a", "b", "c", "d"},
			edges:   [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}},
			wantErr: "cycle detected",
		},
		{
			name:    "cycle in a disjoint component",
			nodes:   []string{"a", "b", "x", "y", "z"},
			edges:   [][2]string{{"a", "b"}, {"x", "y"}, {"y", "z"}, {"z", "y"}},
			wantErr: "cycle detected",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := graphOf(t, tc.nodes, tc.edges...)

			err := g.DetectCycles()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var cycle *CycleError
			require.ErrorAs(t, err, &cycle)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"extrude", "outline", "scene", "hole"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("outline", "extrude"))
	require.NoError(t, g.AddEdge("hole", "outline"))
	require.NoError(t, g.AddEdge("extrude", "scene"))

	order, err := g.TopologicalOrder()

	require.NoError(t, err)
	assert.Equal(t, []string{"hole", "outline", "extrude", "scene"}, order)
	assert.Equal(t, 4, g.Len())
}

func TestDependenciesAndDependents(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("c", "a"))

	deps, err := g.Dependencies("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, deps)

	dependents, err := g.Dependents("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, dependents)

	_, err = g.Dependencies("dne")
	assert.ErrorContains(t, err, "node not found")
}
