package graph_test

import (
	"testing"

	"github.com/katalvlaran/dagview/graph"
	"github.com/stretchr/testify/require"
)

func TestFindOrAdd(t *testing.T) {
	g := graph.New(graph.DefaultLimits())

	a, err := g.FindOrAdd("a")
	require.NoError(t, err)
	require.Equal(t, graph.VertexID(0), a)

	again, err := g.FindOrAdd("a")
	require.NoError(t, err)
	require.Equal(t, a, again, "FindOrAdd must be idempotent for an existing name")

	b, err := g.FindOrAdd("b")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestAddRejectsEmptyAndOverlongNames(t *testing.T) {
	g := graph.New(graph.DefaultLimits())

	_, err := g.Add("")
	require.ErrorIs(t, err, graph.ErrEmptyName)

	long := make([]byte, graph.DefaultLimits().MaxNameBytes+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = g.Add(string(long))
	require.ErrorIs(t, err, graph.ErrNameTooLong)
}

func TestAddCapacityOverflowDegradesGracefully(t *testing.T) {
	limits := graph.DefaultLimits()
	limits.MaxVertices = 2
	g := graph.New(limits)

	_, err := g.Add("a")
	require.NoError(t, err)
	_, err = g.Add("b")
	require.NoError(t, err)
	_, err = g.Add("c")
	require.ErrorIs(t, err, graph.ErrCapacity)
	require.Equal(t, 2, g.Len(), "overflowing add must not grow the vertex store")
}

// TestAdjacencySymmetry checks the invariant from the design's testable
// properties: for every active edge (u,v), v is in Out(u) iff u is in In(v).
func TestAdjacencySymmetry(t *testing.T) {
	g := graph.New(graph.DefaultLimits())
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")
	c, _ := g.FindOrAdd("c")

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, c))

	require.ElementsMatch(t, []graph.VertexID{b, c}, g.Out(a))
	require.ElementsMatch(t, []graph.VertexID{a}, g.In(b))
	require.ElementsMatch(t, []graph.VertexID{a}, g.In(c))

	g.RemoveEdge(a, b)
	require.ElementsMatch(t, []graph.VertexID{c}, g.Out(a))
	require.Empty(t, g.In(b))
}

func TestAddEdgeDuplicateIsNoop(t *testing.T) {
	g := graph.New(graph.DefaultLimits())
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))
	require.Len(t, g.Out(a), 1)
	require.Len(t, g.In(b), 1)
}

func TestAddEdgeRespectsFanOut(t *testing.T) {
	limits := graph.DefaultLimits()
	limits.MaxFanOut = 1
	g := graph.New(limits)
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")
	c, _ := g.FindOrAdd("c")

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, c)) // no-op: fan-out already at bound
	require.Len(t, g.Out(a), 1)
}

func TestRemoveNodeClearsNeighborAdjacency(t *testing.T) {
	g := graph.New(graph.DefaultLimits())
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")
	c, _ := g.FindOrAdd("c")
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	g.RemoveNode(b)

	require.False(t, g.Active(b))
	require.Empty(t, g.Out(a), "neighbours of a removed vertex must lose the adjacency entry")
	require.Empty(t, g.In(c))
}

func TestTwistReversesBatchAtomically(t *testing.T) {
	g := graph.New(graph.DefaultLimits())
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")
	c, _ := g.FindOrAdd("c")
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	g.Twist([]graph.Edge{{Src: a, Dst: b}, {Src: b, Dst: c}})

	require.ElementsMatch(t, []graph.VertexID{a}, g.Out(b))
	require.ElementsMatch(t, []graph.VertexID{b}, g.Out(c))
	require.Empty(t, g.Out(a))
}

func TestTwistOppositePairCancels(t *testing.T) {
	// Documents the open question from the design: two opposite edges in
	// one Twist call remove both, then re-add both reversed, which nets
	// out to no observable change.
	g := graph.New(graph.DefaultLimits())
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, a))

	g.Twist([]graph.Edge{{Src: a, Dst: b}, {Src: b, Dst: a}})

	require.ElementsMatch(t, []graph.VertexID{b}, g.Out(a))
	require.ElementsMatch(t, []graph.VertexID{a}, g.Out(b))
}

func TestCloneIsIndependent(t *testing.T) {
	g := graph.New(graph.DefaultLimits())
	a, _ := g.FindOrAdd("a")
	b, _ := g.FindOrAdd("b")
	require.NoError(t, g.AddEdge(a, b))

	clone := g.Clone()
	clone.RemoveEdge(a, b)

	require.Empty(t, clone.Out(a))
	require.ElementsMatch(t, []graph.VertexID{b}, g.Out(a), "mutating the clone must not affect the original")
}
