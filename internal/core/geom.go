// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Sqrt2 is used to build the four diagonal unit normals (±1, ±1)/√2.
const Sqrt2 = math.Sqrt2

// Epsilon is the tolerance below which a vector magnitude is treated as zero.
const Epsilon = 1e-6

// Vector2D is a 2D direction/offset in world space (y points up).
type Vector2D struct {
	X, Y float64
}

// Point2D is a position in world space.
type Point2D struct {
	X, Y float64
}

// NewVector2D creates a vector from its components.
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewPoint2D creates a point from its components.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Negate returns -v.
func (v Vector2D) Negate() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// IsZero reports whether the magnitude is below Epsilon.
func (v Vector2D) IsZero() bool {
	return Magnitude(v) < Epsilon
}

// Add offsets the point by a vector.
func (p Point2D) Add(v Vector2D) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point2D) Sub(other Point2D) Vector2D {
	return Vector2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// ToVector reinterprets the point as an offset from the origin.
func (p Point2D) ToVector() Vector2D {
	return Vector2D{X: p.X, Y: p.Y}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector2D) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v Vector2D) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func Normalize(v Vector2D) Vector2D {
	mag := Magnitude(v)
	if mag == 0 {
		return v
	}
	return Vector2D{X: v.X / mag, Y: v.Y / mag}
}

// Rotate rotates v counter-clockwise about the origin by the given angle in degrees.
func Rotate(degrees float64, v Vector2D) Vector2D {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect mirrors incident about the surface with the given unit normal:
// incident - 2*Dot(incident, normal)*normal. The result is not re-normalized.
func Reflect(incident, normal Vector2D) Vector2D {
	return incident.Sub(normal.Scale(2 * Dot(incident, normal)))
}

// AngleBetweenDegrees returns the unsigned angle between two unit vectors in degrees.
// The dot product is clamped to [-1, 1] so floating point drift never yields NaN.
func AngleBetweenDegrees(a, b Vector2D) float64 {
	return math.Acos(ClampF(Dot(a, b), -1, 1)) * 180.0 / math.Pi
}

// Cross returns the z component of the 3D cross product of a and b.
// Positive when b lies counter-clockwise from a.
func Cross(a, b Vector2D) float64 {
	return a.X*b.Y - a.Y*b.X
}

// SteerToward rotates the unit vector dir toward the unit vector target by at
// most maxDegrees. It returns the new direction and the rotation applied in degrees.
func SteerToward(dir, target Vector2D, maxDegrees float64) (Vector2D, float64) {
	if maxDegrees <= 0 {
		return dir, 0
	}
	angle := AngleBetweenDegrees(dir, target)
	if angle < Epsilon {
		return dir, 0
	}
	if angle <= maxDegrees {
		return target, angle
	}
	if Cross(dir, target) < 0 {
		return Normalize(Rotate(-maxDegrees, dir)), maxDegrees
	}
	return Normalize(Rotate(maxDegrees, dir)), maxDegrees
}

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
