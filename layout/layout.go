package layout

import "github.com/katalvlaran/dagview/graph"

// Run executes the four-phase Sugiyama pipeline over g: cycle ordering and
// back-edge reversal (on scratch clones), layer assignment, long-edge
// decomposition into dummy vertices, and two-layer crossing minimisation.
//
// The returned graph is a clone of g with dummy vertices inserted and the
// Layer field set on every vertex; every edge in it spans exactly one
// layer. g itself is never mutated. The only failure mode is capacity
// overflow (ErrTooManyLayers): layout still completes with the layers it
// was able to produce.
func Run(g *graph.Graph, opts ...Option) (*graph.Graph, Layers, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	order := cycleOrder(g)
	acyclic := reverseBackEdges(g, order)
	layers := assignLayers(acyclic)

	var err error
	if len(layers) > cfg.MaxLayers {
		layers = layers[:cfg.MaxLayers]
		err = ErrTooManyLayers
	}

	out := g.Clone()
	layers = splitLongEdges(out, layers)
	layers = minimizeCrossings(out, layers)

	return out, layers, err
}
