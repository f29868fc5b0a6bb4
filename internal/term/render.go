package term

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dagview/canvas"
	"github.com/katalvlaran/dagview/graph"
	"github.com/katalvlaran/dagview/highlight"
)

const (
	sgrReset       = "\x1b[0m"
	sgrHighlightOn = "\x1b[1;33m" // bold yellow, mirrors the reference's A_BOLD/yellow pair
	sgrSelectedOn  = "\x1b[7;33m" // reverse-video yellow, for the selected label itself
	clearScreen    = "\x1b[2J\x1b[H"
)

// render draws the portion of cv visible through a termCols x termRows
// viewport starting at (scrollX, scrollY), applying h's cell highlight and
// giving selected's own label reverse video.
func render(w io.Writer, cv *canvas.Canvas, h highlight.Highlight, selected graph.VertexID, scrollX, scrollY, termCols, termRows int) {
	io.WriteString(w, clearScreen)

	drawWidth := termCols - DrawMargin
	var selBox canvas.Box
	hasSel := false
	if selected != graph.None {
		selBox, hasSel = cv.Labels[selected]
	}

	for screenRow := 0; screenRow < termRows; screenRow++ {
		canvasRow := scrollY + screenRow
		if canvasRow >= cv.Height {
			break
		}
		line := rowCells(cv, h, selBox, hasSel, canvasRow, scrollX, drawWidth)
		fmt.Fprintln(w, line)
	}
}

func rowCells(cv *canvas.Canvas, h highlight.Highlight, selBox canvas.Box, hasSel bool, row, scrollX, drawWidth int) string {
	var out []rune

	for screenCol := 0; screenCol < drawWidth; screenCol++ {
		col := scrollX + screenCol
		if col >= cv.Width {
			break
		}
		ch := cv.At(row, col)
		onSelLabel := hasSel && row == selBox.Row && col >= selBox.ColStart && col <= selBox.ColEnd

		switch {
		case onSelLabel:
			out = append(out, []rune(sgrSelectedOn)...)
			out = append(out, ch)
			out = append(out, []rune(sgrReset)...)
		case h.At(cv.Width, row, col):
			out = append(out, []rune(sgrHighlightOn)...)
			out = append(out, ch)
			out = append(out, []rune(sgrReset)...)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

// findClicked returns the vertex whose label box contains (x, y) in
// absolute canvas coordinates, if any.
func findClicked(cv *canvas.Canvas, x, y int) (graph.VertexID, bool) {
	for id, box := range cv.Labels {
		if box.Row == y && x >= box.ColStart && x <= box.ColEnd {
			return id, true
		}
	}
	return graph.None, false
}
