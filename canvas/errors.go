package canvas

import "errors"

// ErrEdgePoolOverflow names the condition where the edge-path pool reaches
// MaxPathCells. Build does not return it: once the pool is full, further
// cells are dropped silently and Build still returns a usable canvas; only
// highlight lookups for the affected edges lose fidelity.
var ErrEdgePoolOverflow = errors.New("canvas: edge path pool overflow")
