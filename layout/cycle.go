package layout

import "github.com/katalvlaran/dagview/graph"

// cycleOrder computes the Eades-Lin-Smyth greedy ordering used to classify
// back-edges: repeatedly peel off all current sources (append left),
// otherwise all current sinks (append right), otherwise the single vertex
// maximising out-degree minus in-degree (append left, ties broken by
// lowest id). The active vertex set shrinks by at least one member on
// every iteration, so the loop always terminates. The final order is
// left followed by right.
//
// g is read through a scratch clone; the caller's graph is untouched.
func cycleOrder(g *graph.Graph) []graph.VertexID {
	scratch := g.Clone()

	var left, right []graph.VertexID

	for {
		active := activeVertices(scratch)
		if len(active) == 0 {
			break
		}

		if sources := withDegreeZero(scratch, active, scratch.InDegree); len(sources) > 0 {
			left = append(left, sources...)
			for _, v := range sources {
				scratch.RemoveNode(v)
			}
			continue
		}

		if sinks := withDegreeZero(scratch, active, scratch.OutDegree); len(sinks) > 0 {
			right = append(right, sinks...)
			for _, v := range sinks {
				scratch.RemoveNode(v)
			}
			continue
		}

		best, bestRank := active[0], scratch.OutDegree(active[0])-scratch.InDegree(active[0])
		for _, v := range active[1:] {
			rank := scratch.OutDegree(v) - scratch.InDegree(v)
			if rank > bestRank {
				best, bestRank = v, rank
			}
		}
		left = append(left, best)
		scratch.RemoveNode(best)
	}

	return append(left, right...)
}

func activeVertices(g *graph.Graph) []graph.VertexID {
	var ids []graph.VertexID
	g.ForEachActive(func(id graph.VertexID) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

func withDegreeZero(g *graph.Graph, active []graph.VertexID, degree func(graph.VertexID) int) []graph.VertexID {
	var out []graph.VertexID
	for _, v := range active {
		if degree(v) == 0 {
			out = append(out, v)
		}
	}
	return out
}
