package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects the coordinate a transform works on
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// TransformKind selects the affine transform applied by Wireframe.Transform
type TransformKind int

const (
	Move TransformKind = iota
	Rotate
	Scale
)

// NormalizationThreshold is the largest absolute coordinate a model may have
// before Normalize rescales it
const NormalizationThreshold = 10.0

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

func (k TransformKind) String() string {
	switch k {
	case Move:
		return "move"
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	default:
		return "unknown"
	}
}

// ParseAxis maps "x", "y" or "z" to an Axis
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return 0, false
}

// ParseTransformKind maps "move", "rotate" or "scale" to a TransformKind
func ParseTransformKind(s string) (TransformKind, bool) {
	switch s {
	case "move":
		return Move, true
	case "rotate":
		return Rotate, true
	case "scale":
		return Scale, true
	}
	return 0, false
}

// Transform applies one affine transform to every vertex.
//
//   - Move adds value to the coordinate on axis.
//   - Rotate turns the model by value degrees around axis. Rotation around Z
//     is clockwise when seen from +Z.
//   - Scale multiplies every coordinate by value; axis is ignored and
//     non-positive factors are ignored.
//
// Empty models and unknown kinds are left untouched.
func (w *Wireframe) Transform(kind TransformKind, value float64, axis Axis) {
	if len(w.Vertices) == 0 {
		return
	}

	m, ok := transformMatrix(kind, value, axis)
	if !ok {
		return
	}
	for i, v := range w.Vertices {
		w.Vertices[i] = m.Mul4x1(v.Vec4(1)).Vec3()
	}
}

func transformMatrix(kind TransformKind, value float64, axis Axis) (mgl64.Mat4, bool) {
	switch kind {
	case Move:
		var offset mgl64.Vec3
		if axis < AxisX || axis > AxisZ {
			return mgl64.Mat4{}, false
		}
		offset[axis] = value
		return mgl64.Translate3D(offset.X(), offset.Y(), offset.Z()), true
	case Rotate:
		rad := DegreesToRadians(value)
		switch axis {
		case AxisX:
			return mgl64.HomogRotate3DX(rad), true
		case AxisY:
			return mgl64.HomogRotate3DY(rad), true
		case AxisZ:
			return mgl64.HomogRotate3DZ(-rad), true
		}
		return mgl64.Mat4{}, false
	case Scale:
		if value <= 0 {
			return mgl64.Mat4{}, false
		}
		return mgl64.Scale3D(value, value, value), true
	}
	return mgl64.Mat4{}, false
}

// Normalize rescales the model so that its largest absolute coordinate is 1,
// but only when that coordinate exceeds NormalizationThreshold
func (w *Wireframe) Normalize() {
	maxAbs := 0.0
	for _, v := range w.Vertices {
		for _, c := range v {
			maxAbs = math.Max(maxAbs, math.Abs(c))
		}
	}

	if maxAbs <= NormalizationThreshold {
		return
	}
	for i, v := range w.Vertices {
		w.Vertices[i] = mgl64.Vec3{v[0] / maxAbs, v[1] / maxAbs, v[2] / maxAbs}
	}
}
