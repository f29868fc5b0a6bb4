// Package layout implements a Sugiyama-style layered layout over a
// graph.Graph: cycle breaking, layer assignment, long-edge decomposition
// into dummy vertices, and two-layer crossing minimisation.
//
// Layout is one-shot and synchronous: Run takes a graph.Graph and returns a
// new graph.Graph (with dummy vertices inserted and every edge spanning
// exactly one layer) plus the ordered Layers that the canvas package turns
// into a diagram. Nothing here blocks, yields, or is cancellable — the
// whole pipeline runs to completion before the caller sees anything.
package layout
