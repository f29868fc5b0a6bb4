// Package input builds the graph.Graph the shell renders: either from
// parsed edge pairs (see internal/edgefile) or, when no file is given, from
// the built-in default graph reproduced below.
package input

import "github.com/katalvlaran/dagview/graph"

// defaultEdges is the program's built-in 17-edge graph, reproduced
// verbatim from the reference implementation's default graph so the
// no-argument invocation renders identically.
var defaultEdges = [][2]string{
	{"init", "parse"}, {"init", "config"},
	{"fetch", "transform"}, {"parse", "fetch"},
	{"parse", "validate"}, {"parse", "build"},
	{"config", "lint"}, {"config", "transform"},
	{"config", "build"}, {"config", "deploy"},
	{"transform", "bundle"}, {"validate", "bundle"},
	{"validate", "test"}, {"build", "validate"},
	{"deploy", "test"}, {"bundle", "publish"},
	{"test", "publish"},
}

// Default returns the built-in demo graph shown when dagview is run with
// no file argument.
func Default() *graph.Graph {
	return Build(defaultEdges, graph.DefaultLimits())
}

// Build constructs a graph.Graph from a list of src/dst name pairs,
// creating vertices on first sight via FindOrAdd. Pairs that exceed
// limits are silently dropped, per this system's capacity-overflow model.
func Build(edges [][2]string, limits graph.Limits) *graph.Graph {
	g := graph.New(limits)
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
