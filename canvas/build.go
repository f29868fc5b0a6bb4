package canvas

import (
	"math"

	"github.com/katalvlaran/dagview/graph"
	"github.com/katalvlaran/dagview/layout"
)

// ComputeWidth picks a canvas width wide enough that every layer's widest
// label fits its column slot: max(minColsPerNode, longestLabel+2) times the
// widest layer's vertex count, plus the margin. Dummy vertices (synthetic,
// unlabelled) are excluded from the label-width scan.
func ComputeWidth(g *graph.Graph, layers layout.Layers, minColsPerNode int) int {
	longest := 0
	widest := 1
	for _, vertices := range layers {
		if len(vertices) > widest {
			widest = len(vertices)
		}
		for _, id := range vertices {
			if g.IsDummy(id) {
				continue
			}
			if n := len(g.Name(id)); n > longest {
				longest = n
			}
		}
	}
	colsPerNode := longest + 2
	if colsPerNode < minColsPerNode {
		colsPerNode = minColsPerNode
	}
	return colsPerNode*widest + CanvasMargin
}

// Build rasterises g (already laid out, with layers assigning every active
// vertex a row band) into a Canvas of the given width. Every edge is
// routed as a vertical/horizontal/vertical polyline; direction bits
// accumulate into the mask grid and are resolved to glyphs in one final
// pass, then non-dummy vertex names are stamped over their centre column.
func Build(g *graph.Graph, layers layout.Layers, width int) *Canvas {
	height := VertSpacing*len(layers) + CanvasMargin
	cv := newCanvas(width, height)

	for lvl, vertices := range layers {
		n := len(vertices)
		if n == 0 {
			n = 1
		}
		for i, id := range vertices {
			cv.NodeCol[id] = int(math.Round((float64(i) + 0.5) / float64(n) * float64(width-1)))
			cv.NodeRow[id] = VertSpacing * lvl
		}
	}

	g.ForEachActive(func(src graph.VertexID) bool {
		srcCol, srcRow := cv.NodeCol[src], cv.NodeRow[src]
		edgeRow := srcRow + EdgeVOffset
		for _, dst := range g.Out(src) {
			dstCol, dstRow := cv.NodeCol[dst], cv.NodeRow[dst]
			offset := len(cv.Path)
			cv.drawVLine(srcCol, srcRow, edgeRow)
			cv.drawHLine(edgeRow, srcCol, dstCol)
			cv.drawVLine(dstCol, edgeRow, dstRow)
			cv.Paths[EdgeKey{Src: src, Dst: dst}] = Span{Offset: offset, Length: len(cv.Path) - offset}
		}
		return true
	})

	for i, mask := range cv.Dirs {
		cv.Glyphs[i] = connector[mask]
	}

	g.ForEachActive(func(id graph.VertexID) bool {
		if g.IsDummy(id) {
			return true
		}
		name := g.Name(id)
		col, row := cv.NodeCol[id], cv.NodeRow[id]
		labelStart := col - len(name)/2
		for c, r := range name {
			x := labelStart + c
			if x >= 0 && x < width {
				cv.Glyphs[row*width+x] = r
			}
		}
		cv.Labels[id] = Box{Row: row, ColStart: labelStart, ColEnd: labelStart + len(name) - 1}
		return true
	})

	return cv
}
