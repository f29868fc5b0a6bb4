package graph

// Clone returns a deep copy of g: every vertex record, including its
// adjacency slices, is independently allocated so mutating the clone
// (as the Sugiyama engine's scratch phases do) never touches g.
func (g *Graph) Clone() *Graph {
	clone := &Graph{limits: g.limits, edges: g.edges, vertices: make([]Vertex, len(g.vertices))}
	for i, v := range g.vertices {
		clone.vertices[i] = Vertex{
			Name:   v.Name,
			Layer:  v.Layer,
			Dummy:  v.Dummy,
			active: v.active,
			In:     append([]VertexID(nil), v.In...),
			Out:    append([]VertexID(nil), v.Out...),
		}
	}
	return clone
}
