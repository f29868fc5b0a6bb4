// Command dagview renders a directed graph as a terminal diagram.
//
// With no file argument it renders the built-in 17-edge demo graph. Given
// a file (or "-" for stdin), it reads "<src> <dst>" edge pairs, one per
// line. --print rasterises once and exits; otherwise it opens an
// interactive session with scrolling and click-to-highlight.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dagview/canvas"
	"github.com/katalvlaran/dagview/graph"
	"github.com/katalvlaran/dagview/internal/edgefile"
	"github.com/katalvlaran/dagview/internal/input"
	"github.com/katalvlaran/dagview/internal/term"
	"github.com/katalvlaran/dagview/layout"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var batch bool
	var fileArg string
	for _, a := range args[1:] {
		if a == "--print" {
			batch = true
		} else {
			fileArg = a
		}
	}

	g, err := loadGraph(fileArg, stdin, stderr)
	if err != nil {
		return 1
	}
	if g.Len() == 0 {
		fmt.Fprintln(stderr, "No edges")
		return 1
	}

	out, layers, err := layout.Run(g)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}

	width := canvas.ComputeWidth(out, layers, canvas.MinColsNode)
	cv := canvas.Build(out, layers, width)

	if batch {
		printCanvas(stdout, cv)
		return 0
	}

	// Reading edges from "-" consumes stdin, so interactive mode needs
	// the controlling terminal reopened to read keystrokes from.
	interactiveIn := stdin
	interactiveFD := term.StdinFD()
	if fileArg == "-" {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			fmt.Fprintln(stderr, "Cannot open /dev/tty")
			return 1
		}
		defer tty.Close()
		interactiveIn = tty
		interactiveFD = int(tty.Fd())
	}

	return runInteractive(out, cv, interactiveFD, interactiveIn, stdout, stderr)
}

func loadGraph(fileArg string, stdin io.Reader, stderr io.Writer) (*graph.Graph, error) {
	if fileArg == "" {
		return input.Default(), nil
	}

	var r io.Reader
	if fileArg == "-" {
		r = stdin
	} else {
		f, err := os.Open(fileArg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, err
		}
		defer f.Close()
		r = f
	}

	pairs := edgefile.Read(r)
	edges := make([][2]string, len(pairs))
	for i, p := range pairs {
		edges[i] = [2]string{p.Src, p.Dst}
	}
	return input.Build(edges, graph.DefaultLimits()), nil
}

// printCanvas emits the rasterised canvas one line per row with trailing
// spaces stripped, per the batch-mode contract.
func printCanvas(w io.Writer, cv *canvas.Canvas) {
	for row := 0; row < cv.Height; row++ {
		end := cv.Width
		for end > 0 && cv.At(row, end-1) == ' ' {
			end--
		}
		line := make([]rune, end)
		for col := 0; col < end; col++ {
			line[col] = cv.At(row, col)
		}
		fmt.Fprintln(w, string(line))
	}
}

func runInteractive(g *graph.Graph, cv *canvas.Canvas, fd int, stdin io.Reader, stdout, stderr io.Writer) int {
	tty, err := term.Open(fd)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer tty.Close()

	if err := term.Run(context.Background(), tty, stdin, stdout, g, cv); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
