// Package testgraphs builds the small fixed graphs used across this
// module's test suites: the worked scenarios from the design's testable
// properties (a two-node chain, a diamond, a simple cycle, a triangle with
// one back-edge, and a long edge needing dummy decomposition). The shell's
// built-in default graph lives in internal/input, not here.
//
// Each constructor is a plain function rather than the functional-options
// builder this package is modeled on, because every fixture here is a
// literal, fully-specified edge list — there is no parameterised family of
// graphs (no Path(n) or Cycle(n)) to justify an options surface.
package testgraphs

import "github.com/katalvlaran/dagview/graph"

// FromEdges builds a graph.Graph from a literal src/dst name list, adding
// vertices on first sight in the order they appear.
func FromEdges(edges [][2]string) *graph.Graph {
	g := graph.New(graph.DefaultLimits())
	for _, e := range edges {
		src, err := g.FindOrAdd(e[0])
		if err != nil {
			continue
		}
		dst, err := g.FindOrAdd(e[1])
		if err != nil {
			continue
		}
		_ = g.AddEdge(src, dst)
	}
	return g
}

// Chain is the two-node chain scenario: a -> b.
func Chain() *graph.Graph {
	return FromEdges([][2]string{{"a", "b"}})
}

// Diamond is the diamond scenario: a branches to b and c, both rejoin at d.
func Diamond() *graph.Graph {
	return FromEdges([][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
	})
}

// Cycle is the simple two-vertex cycle scenario: a -> b -> a.
func Cycle() *graph.Graph {
	return FromEdges([][2]string{{"a", "b"}, {"b", "a"}})
}

// TriangleBackEdge is the three-vertex cycle scenario: a -> b -> c -> a.
func TriangleBackEdge() *graph.Graph {
	return FromEdges([][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
}

// LongEdge is the long-edge scenario: a -> b -> c plus a direct a -> c edge
// that must be split into a dummy chain once b and c are two layers below a.
func LongEdge() *graph.Graph {
	return FromEdges([][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})
}
