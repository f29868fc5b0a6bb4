// Package highlight computes which canvas cells to emphasise when a vertex
// is selected: the cell path of every edge immediately touching it, and
// the label boxes of the non-dummy vertices those edges terminate at.
//
// "Immediately touching" deliberately stops at the first non-dummy vertex
// on each side — a long edge's dummy chain is walked in full (since those
// hops are all one logical edge), but a neighbour's own further edges are
// not explored. Selecting a vertex lights up its direct edges and
// neighbours, not the whole reachable subgraph.
package highlight
