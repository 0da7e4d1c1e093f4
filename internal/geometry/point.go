// Package geometry defines the 3D point and cross-section profile value
// types the rest of the toolkit is built on.
//
// Coordinates are in meters in the hull frame:
//   - X is longitudinal, positive toward the bow
//   - Y is transverse, positive to starboard
//   - Z is vertical, positive upward
package geometry

import (
	"fmt"
	"math"
)

// DefaultTolerance is the coordinate comparison tolerance used when no
// explicit tolerance is given.
const DefaultTolerance = 1e-6

// Point3D is an immutable point in hull coordinates (meters).
// All methods return new values; a Point3D is never modified in place.
type Point3D struct {
	X float64 // longitudinal, bow positive
	Y float64 // transverse, starboard positive
	Z float64 // vertical, up positive
}

// NewPoint3D creates a point from its coordinates.
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum p + q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns the point scaled by k.
func (p Point3D) Scale(k float64) Point3D {
	return Point3D{p.X * k, p.Y * k, p.Z * k}
}

// Div returns the point divided by k. A zero divisor is a domain error.
func (p Point3D) Div(k float64) (Point3D, error) {
	if k == 0 {
		return Point3D{}, fmt.Errorf("division of point by zero scalar")
	}
	return p.Scale(1 / k), nil
}

// Translate returns the point shifted by (dx, dy, dz).
func (p Point3D) Translate(dx, dy, dz float64) Point3D {
	return Point3D{p.X + dx, p.Y + dy, p.Z + dz}
}

// Dot returns the dot product p · q.
func (p Point3D) Dot(q Point3D) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p × q.
func (p Point3D) Cross(q Point3D) Point3D {
	return Point3D{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point3D) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the Euclidean distance between p and q.
func (p Point3D) Distance(q Point3D) float64 {
	return p.Sub(q).Norm()
}

// RotateX rotates the point about the X axis by deg degrees.
// This is the heel rotation, starboard-down positive:
// (y, z) -> (y·cosφ − z·sinφ, y·sinφ + z·cosφ).
func (p Point3D) RotateX(deg float64) Point3D {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Point3D{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// RotateY rotates the point about the Y axis by deg degrees (trim).
func (p Point3D) RotateY(deg float64) Point3D {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Point3D{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// RotateZ rotates the point about the Z axis by deg degrees (yaw).
func (p Point3D) RotateZ(deg float64) Point3D {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Point3D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
		Z: p.Z,
	}
}

// AlmostEqual reports whether p and q agree component-wise within tol.
func (p Point3D) AlmostEqual(q Point3D, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol &&
		math.Abs(p.Y-q.Y) <= tol &&
		math.Abs(p.Z-q.Z) <= tol
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}
