package server

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"spheregen/core"
	"spheregen/objfile"
)

// Message types sent to clients
const (
	TypeModelLoaded      = "model_loaded"
	TypeModelTransformed = "model_transformed"
	TypeModelError       = "model_error"
)

// ModelMessage carries a model snapshot or an error to the frontend
type ModelMessage struct {
	Type        string       `json:"type"`
	Vertices    [][3]float64 `json:"vertices,omitempty"`
	Edges       [][2]int     `json:"edges,omitempty"`
	Filename    string       `json:"filename,omitempty"`
	VertexCount int          `json:"vertexCount"`
	EdgeCount   int          `json:"edgeCount"`
	Error       string       `json:"error,omitempty"`
}

// Controller owns the single model shown to clients
type Controller struct {
	mu    sync.Mutex
	model *core.Wireframe
}

func NewController() *Controller {
	return &Controller{model: &core.Wireframe{}}
}

// LoadModel replaces the current model with the OBJ file at path. On
// failure the previous model is kept and an error message is returned
// alongside the error.
func (c *Controller) LoadModel(path string) (ModelMessage, error) {
	w, err := objfile.Load(path)
	if err != nil {
		return errorMessage(err), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = w
	return c.snapshot(TypeModelLoaded, filepath.Base(path)), nil
}

// GenerateModel replaces the current model with a generated UV sphere
func (c *Controller) GenerateModel(verticesCount int) (ModelMessage, error) {
	if err := core.CheckVertexCount(verticesCount); err != nil {
		return errorMessage(err), err
	}
	w := core.GenerateSphere(verticesCount).Wireframe()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = w
	return c.snapshot(TypeModelLoaded, fmt.Sprintf("sphere_%d.obj", verticesCount)), nil
}

// TransformModel applies a transform to the current model and returns the
// updated snapshot
func (c *Controller) TransformModel(kind core.TransformKind, value float64, axis core.Axis) ModelMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model.Transform(kind, value, axis)
	return c.snapshot(TypeModelTransformed, "")
}

// Snapshot returns the current model without changing it
func (c *Controller) Snapshot() ModelMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(TypeModelLoaded, "")
}

func (c *Controller) snapshot(msgType, filename string) ModelMessage {
	vertices := make([][3]float64, len(c.model.Vertices))
	for i, v := range c.model.Vertices {
		vertices[i] = [3]float64(v)
	}
	edges := make([][2]int, len(c.model.Edges))
	copy(edges, c.model.Edges)

	return ModelMessage{
		Type:        msgType,
		Vertices:    vertices,
		Edges:       edges,
		Filename:    filename,
		VertexCount: len(vertices),
		EdgeCount:   len(edges),
	}
}

func errorMessage(err error) ModelMessage {
	return ModelMessage{Type: TypeModelError, Error: ErrorText(err)}
}

// ErrorText turns load errors into the text shown to users
func ErrorText(err error) string {
	switch {
	case errors.Is(err, objfile.ErrWrongExtension):
		return "Wrong file extension, expected .obj"
	case errors.Is(err, objfile.ErrFailedToOpen):
		return "Failed to open file"
	case errors.Is(err, objfile.ErrIncorrectData):
		return "Incorrect data in file"
	case errors.Is(err, core.ErrTooFewVertices):
		return fmt.Sprintf("Vertex count must be at least %d", core.MinVertexCount)
	case errors.Is(err, core.ErrTooManyVertices):
		return fmt.Sprintf("Vertex count must be at most %d", core.MaxVertexCount)
	default:
		return "Unknown error"
	}
}
