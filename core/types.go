package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a point of a generated mesh
type Vertex = mgl64.Vec3

// Face is a triangle given by three 1-based vertex indices, as OBJ stores them
type Face [3]int

// Mesh holds the output of a single generation call
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// Wireframe is a model as the viewer consumes it: vertex positions plus
// edges between 0-based vertex indices
type Wireframe struct {
	Vertices []mgl64.Vec3
	Edges    [][2]int
}

// VertexCount returns the number of vertices in the model
func (w *Wireframe) VertexCount() int {
	return len(w.Vertices)
}

// EdgeCount returns the number of edges in the model
func (w *Wireframe) EdgeCount() int {
	return len(w.Edges)
}

// AppendPolygonEdges closes the polygon given by 0-based indices and appends
// one edge per side. Polygons with fewer than two indices add nothing.
func AppendPolygonEdges(edges [][2]int, indices []int) [][2]int {
	if len(indices) < 2 {
		return edges
	}
	for i := range indices {
		next := (i + 1) % len(indices)
		edges = append(edges, [2]int{indices[i], indices[next]})
	}
	return edges
}

// Wireframe converts the mesh faces into edges. Every triangle contributes
// its three sides; shared sides are not merged.
func (m *Mesh) Wireframe() *Wireframe {
	w := &Wireframe{
		Vertices: make([]mgl64.Vec3, len(m.Vertices)),
		Edges:    make([][2]int, 0, 3*len(m.Faces)),
	}
	copy(w.Vertices, m.Vertices)

	for _, f := range m.Faces {
		w.Edges = AppendPolygonEdges(w.Edges, []int{f[0] - 1, f[1] - 1, f[2] - 1})
	}
	return w
}
