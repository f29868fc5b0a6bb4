package graph

// AddEdge inserts dst into src's out-adjacency and src into dst's
// in-adjacency, preserving the symmetric-adjacency invariant. It silently
// no-ops — returning nil — when the edge already exists or when either
// endpoint's fan-out bound would be exceeded; this matches the capacity
// error model described in the package's parent design: overflow degrades
// the layout instead of aborting it.
func (g *Graph) AddEdge(src, dst VertexID) error {
	if !g.Active(src) || !g.Active(dst) {
		return ErrUnknownVertex
	}
	if g.edges >= g.limits.MaxEdges {
		return nil
	}
	s, d := &g.vertices[src], &g.vertices[dst]
	if hasAdjacent(s.Out, dst) {
		return nil
	}
	if len(s.Out) >= g.limits.MaxFanOut || len(d.In) >= g.limits.MaxFanOut {
		return nil
	}
	s.Out = append(s.Out, dst)
	d.In = append(d.In, src)
	g.edges++
	return nil
}

// RemoveEdge removes the src->dst edge symmetrically from both adjacency
// lists. Removing an edge that does not exist is a no-op.
func (g *Graph) RemoveEdge(src, dst VertexID) {
	if !g.Active(src) || !g.Active(dst) {
		return
	}
	s, d := &g.vertices[src], &g.vertices[dst]
	before := len(s.Out)
	s.Out = removeAdjacent(s.Out, dst)
	d.In = removeAdjacent(d.In, src)
	if len(s.Out) < before {
		g.edges--
	}
}

// RemoveNode logically deletes id: it is first removed from every
// neighbour's adjacency list, then tombstoned. Its own adjacency counts are
// cleared so a dangling reference can never be followed. id itself is never
// reused.
func (g *Graph) RemoveNode(id VertexID) {
	if !g.Active(id) {
		return
	}
	v := &g.vertices[id]
	for _, in := range append([]VertexID(nil), v.In...) {
		g.RemoveEdge(in, id)
	}
	for _, out := range append([]VertexID(nil), v.Out...) {
		g.RemoveEdge(id, out)
	}
	v.active = false
	v.In = nil
	v.Out = nil
}

// Twist atomically reverses a batch of edges: it removes every listed edge
// first, then inserts all of their reverses. The two-phase shape matters —
// it is what lets two opposite edges passed in the same call cancel
// cleanly instead of one insertion clobbering the other's removal. Twist is
// not strictly involutive when parallel opposite edges already exist in
// the graph independently of the batch (it will remove and re-add both);
// this system admits that input without special-casing it.
func (g *Graph) Twist(edges []Edge) {
	for _, e := range edges {
		g.RemoveEdge(e.Src, e.Dst)
	}
	for _, e := range edges {
		_ = g.AddEdge(e.Dst, e.Src)
	}
}
