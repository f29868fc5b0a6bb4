package highlight

import "github.com/katalvlaran/dagview/graph"

// Highlight is the result of one selection computation: which canvas
// cells to emphasise, and which non-dummy vertices counted as a connected
// terminal (for callers that want the vertex identities, not just cells).
type Highlight struct {
	// Cells is row-major, length cv.Width*cv.Height, matching the canvas
	// it was computed against.
	Cells []bool

	// Terminals is the set of non-dummy vertices directly reached by the
	// selection, forward or backward, through any number of dummy hops.
	Terminals map[graph.VertexID]bool
}

// At reports whether (row, col) is highlighted. Out-of-range coordinates
// report false rather than panicking.
func (h Highlight) At(width, row, col int) bool {
	i := row*width + col
	if i < 0 || i >= len(h.Cells) {
		return false
	}
	return h.Cells[i]
}
