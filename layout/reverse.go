package layout

import "github.com/katalvlaran/dagview/graph"

// reverseBackEdges clones orig and reverses, via graph.Graph.Twist, every
// edge whose destination precedes its source in order. order is the
// cycle-breaking ordering from cycleOrder; an edge (u,v) is a back-edge
// exactly when v comes before u in that ordering. The clone is acyclic.
func reverseBackEdges(orig *graph.Graph, order []graph.VertexID) *graph.Graph {
	out := orig.Clone()

	position := make(map[graph.VertexID]int, len(order))
	for i, v := range order {
		position[v] = i
	}

	var backEdges []graph.Edge
	for _, u := range order {
		for _, v := range out.Out(u) {
			if position[v] < position[u] {
				backEdges = append(backEdges, graph.Edge{Src: u, Dst: v})
			}
		}
	}

	out.Twist(backEdges)
	return out
}
