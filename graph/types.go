package graph

// VertexID identifies a vertex within one Graph. IDs are assigned in
// increasing order starting at 0 as vertices are first seen and are never
// reused, even after the vertex they named is removed. A VertexID is only
// meaningful relative to the Graph that produced it.
type VertexID int

// None is the zero value used by callers to mean "no vertex selected".
const None VertexID = -1

// Vertex is one node of the graph. Name is the printable label used by the
// canvas rasterizer; dummy vertices (inserted by the layout package to
// split long edges) carry a synthesized "_d<k>" name.
type Vertex struct {
	Name   string
	In     []VertexID
	Out    []VertexID
	Layer  int
	Dummy  bool
	active bool
}

// Edge is an ordered vertex pair, used by Twist and by the layout package's
// intermediate edge lists.
type Edge struct {
	Src, Dst VertexID
}

// Limits bounds the size of a Graph, mirroring the fixed-capacity arrays of
// the system this package reimplements. Defaults (see DefaultLimits) are
// generous enough for any terminal-sized diagram; they exist so that
// pathological input degrades by silent truncation instead of unbounded
// memory growth, per the capacity-overflow error model.
type Limits struct {
	MaxVertices  int
	MaxFanOut    int
	MaxNameBytes int
	MaxEdges     int
}

// DefaultLimits matches the capacity bounds of the reference implementation
// this package's algorithms are drawn from.
func DefaultLimits() Limits {
	return Limits{
		MaxVertices:  512,
		MaxFanOut:    64,
		MaxNameBytes: 63,
		MaxEdges:     4096,
	}
}

// Graph is an ordered collection of vertices addressed by VertexID, with
// symmetric in/out adjacency. See the package doc for its invariants.
type Graph struct {
	limits   Limits
	vertices []Vertex
	edges    int // live edge count, checked against MaxEdges by AddEdge
}

// New returns an empty Graph bounded by limits.
func New(limits Limits) *Graph {
	return &Graph{limits: limits}
}

// Limits reports the capacity bounds this graph was constructed with.
func (g *Graph) Limits() Limits { return g.limits }

// Len returns the number of vertex slots ever allocated, active or not.
// Iterate VertexID(0) through Len()-1 and check Active to visit all live
// vertices; tombstoned slots are never reused so this is a stable upper
// bound across one layout run.
func (g *Graph) Len() int { return len(g.vertices) }
