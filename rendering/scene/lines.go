package scene

import (
	"spheregen/core"
)

// LineVertices flattens the edges of a wireframe into x, y, z triples, two
// per edge, ready for a GL_LINES draw. Edges pointing outside the vertex list
// are skipped.
func LineVertices(w *core.Wireframe) []float32 {
	out := make([]float32, 0, 6*len(w.Edges))
	n := len(w.Vertices)
	for _, e := range w.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			continue
		}
		a, b := w.Vertices[e[0]], w.Vertices[e[1]]
		out = append(out,
			float32(a[0]), float32(a[1]), float32(a[2]),
			float32(b[0]), float32(b[1]), float32(b[2]),
		)
	}
	return out
}
