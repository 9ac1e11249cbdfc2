package core

import (
	"errors"
	"fmt"
	"math"
)

// MinVertexCount is the smallest requested count that yields a sphere with
// at least one parallel
const MinVertexCount = 2

// MaxVertexCount caps counts requested interactively, matching the largest
// default fixture tier
const MaxVertexCount = 1000000

var (
	// ErrTooFewVertices is the panic value (wrapped) of GenerateSphere when
	// the requested count cannot produce a single parallel
	ErrTooFewVertices = errors.New("vertex count too small for a sphere")
	// ErrTooManyVertices is returned by CheckVertexCount above MaxVertexCount
	ErrTooManyVertices = errors.New("vertex count too large")
)

// CheckVertexCount validates a count coming from a client or a flag before it
// reaches GenerateSphere
func CheckVertexCount(verticesCount int) error {
	if verticesCount < MinVertexCount {
		return fmt.Errorf("%w: %d", ErrTooFewVertices, verticesCount)
	}
	if verticesCount > MaxVertexCount {
		return fmt.Errorf("%w: %d", ErrTooManyVertices, verticesCount)
	}
	return nil
}

// SphereResolution returns the number of parallels and meridians used for a
// requested vertex count. The requested count only seeds the resolution:
// the generated sphere has (parallels+1)*meridians vertices.
func SphereResolution(verticesCount int) (parallels, meridians int) {
	parallels = int(math.Sqrt(float64(verticesCount) / 2))
	meridians = 2 * parallels
	return parallels, meridians
}

// GenerateSphere generates a UV sphere on the unit sphere.
//
// Every parallel, the two poles included, has one vertex per meridian, so the
// pole points are repeated rather than shared. Faces use 1-based indices.
//
// verticesCount must be at least MinVertexCount; smaller values panic with an
// error wrapping ErrTooFewVertices.
func GenerateSphere(verticesCount int) *Mesh {
	parallels, meridians := SphereResolution(verticesCount)
	if parallels < 1 {
		panic(fmt.Errorf("%w: %d", ErrTooFewVertices, verticesCount))
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, (parallels+1)*meridians),
		Faces:    make([]Face, 0, 2*parallels*meridians-2*meridians),
	}

	// Vertices, ring by ring from the north pole (theta = 0) to the south pole
	for i := 0; i <= parallels; i++ {
		theta := float64(i) * math.Pi / float64(parallels)
		for j := 0; j < meridians; j++ {
			phi := float64(j) * 2 * math.Pi / float64(meridians)
			mesh.Vertices = append(mesh.Vertices, SphericalToCartesian(theta, phi))
		}
	}

	// Two triangles per quad, except next to the poles where one of them
	// would collapse onto the repeated pole point
	for i := 0; i < parallels; i++ {
		for j := 0; j < meridians; j++ {
			next := (j + 1) % meridians
			a := i*meridians + j + 1
			b := i*meridians + next + 1
			c := (i+1)*meridians + next + 1
			d := (i+1)*meridians + j + 1

			if !isNorthPoleRing(i) {
				mesh.Faces = append(mesh.Faces, Face{a, b, d})
			}
			if !isSouthPoleRing(i, parallels) {
				mesh.Faces = append(mesh.Faces, Face{b, c, d})
			}
		}
	}

	return mesh
}

// isNorthPoleRing reports whether band i touches the north pole. There the
// (a, b, d) triangle has both a and b on the pole and is skipped.
func isNorthPoleRing(i int) bool {
	return i == 0
}

// isSouthPoleRing reports whether band i touches the south pole. There the
// (b, c, d) triangle has both c and d on the pole and is skipped.
func isSouthPoleRing(i, parallels int) bool {
	return i == parallels-1
}
