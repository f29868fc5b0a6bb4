package graph

// Find returns the id of the active vertex named name, scanning linearly as
// the source implementation does — graphs in this system are small enough
// (a few hundred vertices at most) that a map index buys nothing but
// complexity.
func (g *Graph) Find(name string) (VertexID, bool) {
	for i := range g.vertices {
		v := &g.vertices[i]
		if v.active && v.Name == name {
			return VertexID(i), true
		}
	}
	return None, false
}

// Add appends a new active vertex named name and returns its id.
func (g *Graph) Add(name string) (VertexID, error) {
	if name == "" {
		return None, ErrEmptyName
	}
	if len(name) > g.limits.MaxNameBytes {
		return None, ErrNameTooLong
	}
	if len(g.vertices) >= g.limits.MaxVertices {
		return None, ErrCapacity
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Name: name, active: true})
	return id, nil
}

// FindOrAdd returns the existing id for name, or adds it.
func (g *Graph) FindOrAdd(name string) (VertexID, error) {
	if id, ok := g.Find(name); ok {
		return id, nil
	}
	return g.Add(name)
}

// AddDummy appends a synthesized dummy vertex at the given layer, used by
// the layout package's long-edge decomposition phase. It bypasses the name
// checks of Add since dummy names are generated internally and already
// known to be unique; the vertex capacity bound still applies (ErrCapacity).
func (g *Graph) AddDummy(name string, layer int) (VertexID, error) {
	if len(g.vertices) >= g.limits.MaxVertices {
		return None, ErrCapacity
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Name: name, Layer: layer, Dummy: true, active: true})
	return id, nil
}

// Vertex returns a copy of the vertex record for id. The zero value is
// returned for an out-of-range id.
func (g *Graph) Vertex(id VertexID) Vertex {
	if id < 0 || int(id) >= len(g.vertices) {
		return Vertex{}
	}
	return g.vertices[id]
}

// Active reports whether id names a live (non-removed) vertex.
func (g *Graph) Active(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices) && g.vertices[id].active
}

// Name returns the vertex's name, or "" if id is out of range.
func (g *Graph) Name(id VertexID) string {
	if id < 0 || int(id) >= len(g.vertices) {
		return ""
	}
	return g.vertices[id].Name
}

// SetLayer records the layer index assigned to id by the layout package.
func (g *Graph) SetLayer(id VertexID, layer int) {
	if id >= 0 && int(id) < len(g.vertices) {
		g.vertices[id].Layer = layer
	}
}

// Layer returns the layer index previously recorded for id via SetLayer.
func (g *Graph) Layer(id VertexID) int {
	if id < 0 || int(id) >= len(g.vertices) {
		return 0
	}
	return g.vertices[id].Layer
}

// IsDummy reports whether id names a dummy vertex synthesized during
// long-edge decomposition.
func (g *Graph) IsDummy(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices) && g.vertices[id].Dummy
}

// ForEachActive calls fn once for every active vertex, in id order. fn
// returning false stops the iteration early.
func (g *Graph) ForEachActive(fn func(id VertexID) bool) {
	for i := range g.vertices {
		if !g.vertices[i].active {
			continue
		}
		if !fn(VertexID(i)) {
			return
		}
	}
}
