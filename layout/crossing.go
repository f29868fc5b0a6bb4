package layout

import "github.com/katalvlaran/dagview/graph"

// minimizeCrossings reorders every layer except the bottommost, working
// bottom-up so each pass orders one layer against an already-fixed lower
// neighbour. It is not provably optimal — ties in the comparator are
// permitted — but it is the standard two-layer crossing heuristic and
// matches the exact comparator this system has always used (a
// crossing-cost matrix consulted by a stable merge sort), not a
// barycenter average.
func minimizeCrossings(g *graph.Graph, layers Layers) Layers {
	if len(layers) < 2 {
		return layers
	}

	result := make(Layers, len(layers))
	result[len(layers)-1] = layers[len(layers)-1]

	lower := result[len(layers)-1]
	for i := len(layers) - 2; i >= 0; i-- {
		matrix := crossingCostMatrix(g, layers[i], lower)
		ordered := crossSort(indexRange(len(layers[i])), matrix)

		reordered := make([]graph.VertexID, len(ordered))
		for j, idx := range ordered {
			reordered[j] = layers[i][idx]
		}
		result[i] = reordered
		lower = reordered
	}

	return result
}

// crossingCostMatrix computes, for every ordered pair (u,v) of positions in
// upper, the number of crossings placing u to the left of v would induce
// against the fixed lower layer. For every neighbour (in either direction)
// of upper[u] and upper[v] found in lower, an inversion in their lower
// positions increments the matrix entry for the losing order.
func crossingCostMatrix(g *graph.Graph, upper, lower []graph.VertexID) [][]int {
	n := len(upper)
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	lowerPos := make(map[graph.VertexID]int, len(lower))
	for i, v := range lower {
		lowerPos[v] = i
	}

	neighborPositions := func(v graph.VertexID) []int {
		var idx []int
		for _, n := range g.Out(v) {
			if p, ok := lowerPos[n]; ok {
				idx = append(idx, p)
			}
		}
		for _, n := range g.In(v) {
			if p, ok := lowerPos[n]; ok {
				idx = append(idx, p)
			}
		}
		return idx
	}

	for ui := 0; ui < n; ui++ {
		idxU := neighborPositions(upper[ui])
		for vi := ui + 1; vi < n; vi++ {
			idxV := neighborPositions(upper[vi])
			for _, a := range idxU {
				for _, b := range idxV {
					switch {
					case a > b:
						matrix[ui][vi]++
					case a < b:
						matrix[vi][ui]++
					}
				}
			}
		}
	}
	return matrix
}

func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// crossSort is a stable merge sort whose comparator consults matrix: when
// merging, the left candidate is taken whenever matrix[left][right] <=
// matrix[right][left]. This is the same total-enough, not-provably-optimal
// comparator the reference heuristic has always used.
func crossSort(indices []int, matrix [][]int) []int {
	if len(indices) < 2 {
		return indices
	}
	mid := len(indices) / 2
	left := crossSort(append([]int(nil), indices[:mid]...), matrix)
	right := crossSort(append([]int(nil), indices[mid:]...), matrix)

	out := make([]int, 0, len(indices))
	li, ri := 0, 0
	for li < len(left) && ri < len(right) {
		if matrix[left[li]][right[ri]] <= matrix[right[ri]][left[li]] {
			out = append(out, left[li])
			li++
		} else {
			out = append(out, right[ri])
			ri++
		}
	}
	out = append(out, left[li:]...)
	out = append(out, right[ri:]...)
	return out
}
