package layout

import (
	"fmt"

	"github.com/katalvlaran/dagview/graph"
)

// splitLongEdges replaces every edge whose endpoints' layers differ by
// more than one with a chain of dummy vertices, one per intermediate
// layer, so that every remaining edge connects adjacent layers. The chain
// runs in the same direction as the original edge even when that edge was
// a reversed back-edge, since out carries the original (pre phase-1b)
// edge directions — Run passes a fresh clone of its input here, so out and
// the acyclic layering graph are different graphs joined only by layer
// indices.
func splitLongEdges(out *graph.Graph, layers Layers) Layers {
	for lvl, vertices := range layers {
		for _, v := range vertices {
			out.SetLayer(v, lvl)
		}
	}

	type longEdge struct {
		src, dst graph.VertexID
		srcLayer int
	}
	var multi []longEdge
	for lvl, vertices := range layers {
		for _, v := range vertices {
			for _, child := range out.Out(v) {
				if diff := out.Layer(child) - lvl; diff > 1 || diff < -1 {
					multi = append(multi, longEdge{src: v, dst: child, srcLayer: lvl})
				}
			}
		}
	}

	dummyID := 0
	for _, e := range multi {
		layers = insertDummyChain(out, layers, e.src, e.dst, e.srcLayer, &dummyID)
	}
	return layers
}

func insertDummyChain(out *graph.Graph, layers Layers, src, dst graph.VertexID, srcLayer int, dummyID *int) Layers {
	dstLayer := out.Layer(dst)
	step := 1
	if dstLayer < srcLayer {
		step = -1
	}
	out.RemoveEdge(src, dst)

	prev := src
	for lvl := srcLayer + step; lvl != dstLayer; lvl += step {
		dummy, err := out.AddDummy(fmt.Sprintf("_d%d", *dummyID), lvl)
		if err != nil {
			// Capacity overflow: stop extending the chain and wire
			// whatever we have so far directly to dst, same graceful
			// degradation every other capacity bound in this system
			// follows.
			break
		}
		*dummyID++
		_ = out.AddEdge(prev, dummy)
		layers[lvl] = append(layers[lvl], dummy)
		prev = dummy
	}
	_ = out.AddEdge(prev, dst)
	return layers
}
