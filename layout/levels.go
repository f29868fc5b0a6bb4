package layout

import "github.com/katalvlaran/dagview/graph"

// assignLayers assigns every vertex of the acyclic graph to a layer by
// repeatedly peeling off the current sinks into a new layer. Layers are
// therefore built bottom-up; the result is reversed before returning so
// that index 0 is the top of the drawing (true sources land there).
func assignLayers(acyclic *graph.Graph) Layers {
	scratch := acyclic.Clone()

	var layers Layers
	for {
		active := activeVertices(scratch)
		if len(active) == 0 {
			break
		}
		sinks := withDegreeZero(scratch, active, scratch.OutDegree)
		if len(sinks) == 0 {
			// Cannot happen on an acyclic graph with at least one active
			// vertex, but guard against runaway loops on malformed input.
			break
		}
		layers = append(layers, sinks)
		for _, v := range sinks {
			scratch.RemoveNode(v)
		}
	}

	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	return layers
}
