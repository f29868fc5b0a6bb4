// Package graph is an in-memory directed multigraph with logical deletion,
// built for one purpose: feeding the dagview Sugiyama layout engine.
//
// Vertices are addressed by a stable, never-reused VertexID assigned on
// first sight. Deletion is logical — RemoveNode flips a tombstone flag
// rather than shifting identifiers, so a VertexID captured before a
// mutation remains valid to compare afterward. Adjacency is kept
// symmetric: v is in g.Out(u) if and only if u is in g.In(v).
//
// The package is deliberately not safe for concurrent use. Layout runs
// single-threaded to completion before anything reads the result (see
// package layout), so there is nothing to protect here.
package graph
