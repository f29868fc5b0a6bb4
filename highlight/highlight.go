package highlight

import (
	"github.com/katalvlaran/dagview/canvas"
	"github.com/katalvlaran/dagview/graph"
)

// Compute returns the cells and terminal vertices to highlight for the
// given selection. selected == graph.None clears the highlight entirely.
//
// Two independent DFS sweeps run with an explicit stack, not recursion, so
// a pathologically long dummy chain cannot blow the call stack: forward
// over outgoing edges, backward over incoming edges. Each marks the path
// cells of every edge it crosses; a dummy neighbour continues the same
// sweep (it is just the next waypoint of one long edge), a non-dummy
// neighbour is recorded as a terminal and that branch stops there.
func Compute(g *graph.Graph, cv *canvas.Canvas, selected graph.VertexID) Highlight {
	cells := make([]bool, cv.Width*cv.Height)
	terminals := make(map[graph.VertexID]bool)

	if selected == graph.None {
		return Highlight{Cells: cells, Terminals: terminals}
	}

	sweep(g, cv, cells, terminals, selected, true)
	sweep(g, cv, cells, terminals, selected, false)

	for id := range terminals {
		box, ok := cv.Labels[id]
		if !ok {
			continue
		}
		for col := box.ColStart; col <= box.ColEnd; col++ {
			markCell(cells, cv.Width, box.Row, col)
		}
	}

	return Highlight{Cells: cells, Terminals: terminals}
}

func sweep(g *graph.Graph, cv *canvas.Canvas, cells []bool, terminals map[graph.VertexID]bool, start graph.VertexID, forward bool) {
	visited := make(map[graph.VertexID]bool)
	stack := []graph.VertexID{start}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true

		neighbors := g.In(node)
		if forward {
			neighbors = g.Out(node)
		}
		for _, neighbor := range neighbors {
			if forward {
				markEdgePath(cells, cv, node, neighbor)
			} else {
				markEdgePath(cells, cv, neighbor, node)
			}
			if g.IsDummy(neighbor) {
				stack = append(stack, neighbor)
			} else {
				terminals[neighbor] = true
			}
		}
	}
}

func markEdgePath(cells []bool, cv *canvas.Canvas, src, dst graph.VertexID) {
	span, ok := cv.Paths[canvas.EdgeKey{Src: src, Dst: dst}]
	if !ok {
		return
	}
	for i := span.Offset; i < span.Offset+span.Length; i++ {
		cell := cv.Path[i]
		markCell(cells, cv.Width, cell.Row, cell.Col)
	}
}

func markCell(cells []bool, width, row, col int) {
	i := row*width + col
	if i < 0 || i >= len(cells) {
		return
	}
	cells[i] = true
}
