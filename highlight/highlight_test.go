package highlight_test

import (
	"testing"

	"github.com/katalvlaran/dagview/canvas"
	"github.com/katalvlaran/dagview/graph"
	"github.com/katalvlaran/dagview/highlight"
	"github.com/katalvlaran/dagview/internal/testgraphs"
	"github.com/katalvlaran/dagview/layout"
	"github.com/stretchr/testify/require"
)

func buildCanvas(t *testing.T, g *graph.Graph) (*graph.Graph, layout.Layers, *canvas.Canvas) {
	t.Helper()
	out, layers, err := layout.Run(g)
	require.NoError(t, err)
	width := canvas.ComputeWidth(out, layers, canvas.MinColsNode)
	return out, layers, canvas.Build(out, layers, width)
}

func TestComputeNoSelectionYieldsEmptyHighlight(t *testing.T) {
	g := testgraphs.Chain()
	out, _, cv := buildCanvas(t, g)

	h := highlight.Compute(out, cv, graph.None)
	for _, on := range h.Cells {
		require.False(t, on)
	}
	require.Empty(t, h.Terminals)
}

func TestComputeChainMarksBothDirections(t *testing.T) {
	g := testgraphs.Chain()
	out, _, cv := buildCanvas(t, g)

	a, _ := out.Find("a")
	b, _ := out.Find("b")

	h := highlight.Compute(out, cv, a)
	require.True(t, h.Terminals[b])

	h2 := highlight.Compute(out, cv, b)
	require.True(t, h2.Terminals[a])
}

func TestComputeLongEdgeWalksThroughDummyToRealTerminal(t *testing.T) {
	g := testgraphs.LongEdge()
	out, _, cv := buildCanvas(t, g)

	a, _ := out.Find("a")
	c, _ := out.Find("c")

	h := highlight.Compute(out, cv, a)
	require.True(t, h.Terminals[c], "the a->c long edge's dummy chain must resolve to c as a terminal")

	// No dummy vertex should itself appear as a terminal.
	for id := range h.Terminals {
		require.False(t, out.IsDummy(id))
	}
}

func TestComputeMarksTerminalLabelBoxCells(t *testing.T) {
	g := testgraphs.Chain()
	out, _, cv := buildCanvas(t, g)

	a, _ := out.Find("a")
	b, _ := out.Find("b")

	h := highlight.Compute(out, cv, a)
	box := cv.Labels[b]
	require.True(t, h.At(cv.Width, box.Row, box.ColStart))
}
