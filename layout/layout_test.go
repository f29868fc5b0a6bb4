package layout_test

import (
	"testing"

	"github.com/katalvlaran/dagview/graph"
	"github.com/katalvlaran/dagview/internal/testgraphs"
	"github.com/katalvlaran/dagview/layout"
	"github.com/stretchr/testify/require"
)

func names(g *graph.Graph, layers layout.Layers) [][]string {
	out := make([][]string, len(layers))
	for i, layer := range layers {
		row := make([]string, len(layer))
		for j, id := range layer {
			row[j] = g.Name(id)
		}
		out[i] = row
	}
	return out
}

func TestTwoNodeChain(t *testing.T) {
	g := testgraphs.Chain()

	out, layers, err := layout.Run(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a"}, {"b"}}, names(out, layers))
}

func TestDiamond(t *testing.T) {
	g := testgraphs.Diamond()

	out, layers, err := layout.Run(g)
	require.NoError(t, err)
	require.Len(t, layers, 3)
	require.Equal(t, []string{"a"}, names(out, layers)[0])
	require.ElementsMatch(t, []string{"b", "c"}, names(out, layers)[1])
	require.Equal(t, []string{"d"}, names(out, layers)[2])
}

func TestSimpleCycleReversesExactlyOneEdge(t *testing.T) {
	g := testgraphs.Cycle()

	out, layers, err := layout.Run(g)
	require.NoError(t, err)
	require.Len(t, layers, 2)
	require.Len(t, layers[0], 1)
	require.Len(t, layers[1], 1)
	require.ElementsMatch(t, []string{"a", "b"}, append(names(out, layers)[0], names(out, layers)[1]...))
}

// TestTriangleWithBackEdge checks the three-vertex cycle scenario: phase 1
// reverses exactly one edge (c->a) to break the cycle, giving each of a, b,
// c its own layer. But dummy insertion walks the *original*, pre-reversal
// edge set (see splitLongEdges), and the original c->a edge still spans
// those same three layers top-to-bottom — so it is decomposed into a
// one-vertex dummy chain through the middle layer, same as any other
// long edge. The middle layer therefore holds b plus that dummy, not b
// alone.
func TestTriangleWithBackEdge(t *testing.T) {
	g := testgraphs.TriangleBackEdge()

	out, layers, err := layout.Run(g)
	require.NoError(t, err)
	require.Len(t, layers, 3)
	require.Equal(t, []string{"a"}, names(out, layers)[0])
	require.Len(t, layers[1], 2, "middle layer holds b and the dummy splitting the reversed-direction c->a edge")
	require.Equal(t, []string{"c"}, names(out, layers)[2])

	var sawDummy bool
	for _, id := range layers[1] {
		if out.IsDummy(id) {
			sawDummy = true
		}
	}
	require.True(t, sawDummy)
}

func TestLongEdgeInsertsDummy(t *testing.T) {
	g := testgraphs.LongEdge()

	out, layers, err := layout.Run(g)
	require.NoError(t, err)
	require.Len(t, layers, 3)
	require.Equal(t, []string{"a"}, names(out, layers)[0])
	require.Len(t, layers[1], 2, "layer 1 must hold b and the dummy splitting a->c")
	require.Equal(t, []string{"c"}, names(out, layers)[2])

	var sawDummy bool
	for _, id := range layers[1] {
		if out.IsDummy(id) {
			sawDummy = true
		}
	}
	require.True(t, sawDummy)
}

// TestAdjacentLayersOnly verifies the design's "adjacent-layers-only"
// invariant holds after long-edge decomposition, across every scenario.
func TestAdjacentLayersOnly(t *testing.T) {
	graphs := []*graph.Graph{
		testgraphs.Chain(), testgraphs.Diamond(), testgraphs.Cycle(),
		testgraphs.TriangleBackEdge(), testgraphs.LongEdge(),
	}
	for _, g := range graphs {
		out, _, err := layout.Run(g)
		require.NoError(t, err)

		out.ForEachActive(func(id graph.VertexID) bool {
			for _, child := range out.Out(id) {
				diff := out.Layer(child) - out.Layer(id)
				require.True(t, diff == 1 || diff == -1, "edge %d->%d spans %d layers", id, child, diff)
			}
			return true
		})
	}
}

// TestLayeringTotality verifies every active vertex appears in exactly one
// layer, with no duplicates.
func TestLayeringTotality(t *testing.T) {
	out, layers, err := layout.Run(testgraphs.Diamond())
	require.NoError(t, err)

	seen := map[graph.VertexID]int{}
	for _, layer := range layers {
		for _, id := range layer {
			seen[id]++
		}
	}
	out.ForEachActive(func(id graph.VertexID) bool {
		require.Equal(t, 1, seen[id], "vertex %d must appear in exactly one layer", id)
		return true
	})
}
