package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinDistance and MaxDistance bound the zoom
	MinDistance = 1.2
	MaxDistance = 50.0

	maxPitch    = 1.5
	sensitivity = 0.008
)

// OrbitCamera circles the origin. Yaw and pitch are in radians; pitch is
// clamped short of the poles so the up vector stays valid.
type OrbitCamera struct {
	Yaw      float32
	Pitch    float32
	Distance float32

	Width  int
	Height int
}

// NewOrbitCamera looks at a unit-sized model from three units away
func NewOrbitCamera(width, height int) *OrbitCamera {
	return &OrbitCamera{
		Distance: 3,
		Width:    width,
		Height:   height,
	}
}

// Position returns the eye position in world space
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cosPitch := float32(math.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		c.Distance * cosPitch * float32(math.Cos(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * cosPitch * float32(math.Sin(float64(c.Yaw))),
	}
}

// View returns the view matrix looking at the origin
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection returns a 45 degree perspective matrix for the current size
func (c *OrbitCamera) Projection() mgl32.Mat4 {
	aspect := float32(1)
	if c.Height > 0 {
		aspect = float32(c.Width) / float32(c.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(45.0), aspect, 0.01, 1000.0)
}

// MVP returns projection * view
func (c *OrbitCamera) MVP() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Drag rotates the camera by a mouse movement in pixels
func (c *OrbitCamera) Drag(dx, dy float64) {
	c.Yaw += float32(dx) * sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+float32(dy)*sensitivity, -maxPitch, maxPitch)
}

// Zoom moves the camera towards (positive steps) or away from the origin
func (c *OrbitCamera) Zoom(steps float64) {
	c.Distance = mgl32.Clamp(c.Distance*float32(1.0-steps*0.1), MinDistance, MaxDistance)
}

// Resize updates the viewport size used for the aspect ratio
func (c *OrbitCamera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}
