package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// SphericalToCartesian converts a polar angle theta (from +Z) and an
// azimuth phi (from +X towards +Y) to a point on the unit sphere.
// Z points to the north pole.
func SphericalToCartesian(theta, phi float64) mgl64.Vec3 {
	sinTheta := math.Sin(theta)
	return mgl64.Vec3{
		sinTheta * math.Cos(phi),
		sinTheta * math.Sin(phi),
		math.Cos(theta),
	}
}
