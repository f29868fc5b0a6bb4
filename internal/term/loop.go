package term

import (
	"context"
	"io"

	"github.com/katalvlaran/dagview/canvas"
	"github.com/katalvlaran/dagview/graph"
	"github.com/katalvlaran/dagview/highlight"
)

// Run drives the interactive event loop until the user quits (q/Q) or ctx
// is cancelled. t is already in raw mode (see Open); stdin is read for
// keystrokes and mouse reports, stdout receives the redrawn frame.
//
// One goroutine watches SIGWINCH, one reads stdin; the loop itself is a
// single select over both plus ctx.Done(), so there is exactly one place
// that touches scroll offset and selection state.
func Run(ctx context.Context, t *Terminal, stdin io.Reader, stdout io.Writer, g *graph.Graph, cv *canvas.Canvas) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Turn on button-press/wheel reporting in SGR form (DECSET 1000 and
	// 1006); the terminal sends no mouse sequences until asked to.
	io.WriteString(stdout, "\x1b[?1000h\x1b[?1006h")
	defer io.WriteString(stdout, "\x1b[?1006l\x1b[?1000l")

	events := make(chan Event)
	done := make(chan struct{})
	defer close(done)

	go watchResize(ctx, events)
	go readInput(stdin, events, done)

	var scrollX, scrollY int
	selected := graph.None

	for {
		cols, rows, err := t.Size()
		if err != nil {
			cols, rows = cv.Width, cv.Height
		}
		scrollX = clampScroll(scrollX, cv.Width, cols-DrawMargin)
		scrollY = clampScroll(scrollY, cv.Height, rows)

		h := highlight.Compute(g, cv, selected)
		render(stdout, cv, h, selected, scrollX, scrollY, cols, rows)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			quit, nx, ny, nsel := applyEvent(ev, scrollX, scrollY, selected, cv)
			if quit {
				return nil
			}
			scrollX, scrollY, selected = nx, ny, nsel
		}
	}
}

// applyEvent folds one decoded Event into the loop's scroll/selection
// state. It is a pure function so the dispatch table is testable without
// a real terminal.
func applyEvent(ev Event, scrollX, scrollY int, selected graph.VertexID, cv *canvas.Canvas) (quit bool, nextScrollX, nextScrollY int, nextSelected graph.VertexID) {
	nextScrollX, nextScrollY, nextSelected = scrollX, scrollY, selected

	switch ev.Kind {
	case EventKey:
		switch ev.Rune {
		case 'q', 'Q':
			return true, scrollX, scrollY, selected
		case ' ':
			nextSelected = graph.None
		case 'a', KeyLeft:
			nextScrollX = scrollX - ScrollStep
		case 'd', KeyRight:
			nextScrollX = scrollX + ScrollStep
		case 'z', KeyUp:
			nextScrollY = scrollY - ScrollStep
		case 's', KeyDown:
			nextScrollY = scrollY + ScrollStep
		}
	case EventScroll:
		nextScrollY = scrollY + ev.DY*ScrollStep
	case EventClick:
		clicked, ok := findClicked(cv, ev.X+scrollX, ev.Y+scrollY)
		if ok {
			if clicked == selected {
				nextSelected = graph.None
			} else {
				nextSelected = clicked
			}
		}
	case EventResize:
		// Nothing to fold in directly; the next loop iteration re-reads
		// t.Size() and re-clamps scroll offsets against it.
	}
	return false, nextScrollX, nextScrollY, nextSelected
}
