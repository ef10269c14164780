// Package vmath provides the 2D vector math shared by the simulation and the renderer.
package vmath

import "math"

// Vec2 represents a 2D vector. Operations return new values and never mutate the receiver.
type Vec2 struct {
	X float64
	Y float64
}

// Zero returns the zero vector
func Zero() Vec2 {
	return Vec2{}
}

// Add returns a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale multiplies both components by k
func (a Vec2) Scale(k float64) Vec2 {
	return Vec2{X: a.X * k, Y: a.Y * k}
}

// Len returns the Euclidean length
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Dist returns the distance between two points
func (a Vec2) Dist(b Vec2) float64 {
	return a.Sub(b).Len()
}

// Dot returns the dot product
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Angle returns atan2(y, x)
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// Normalize returns the unit vector, zero-safe.
// The zero vector normalizes to zero so NaN never reaches position state.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: a.X / l, Y: a.Y / l}
}

// Rotate rotates the vector around the origin by theta radians
func (a Vec2) Rotate(theta float64) Vec2 {
	sinA, cosA := math.Sincos(theta)
	return Vec2{
		X: a.X*cosA - a.Y*sinA,
		Y: a.X*sinA + a.Y*cosA,
	}
}

// Limit clamps the length to maxLen while preserving direction
func (a Vec2) Limit(maxLen float64) Vec2 {
	l := a.Len()
	if l <= maxLen || l == 0 {
		return a
	}
	if maxLen <= 0 {
		return Vec2{}
	}
	return a.Scale(maxLen / l)
}

// Reflect returns a reflected about the unit normal n: a - 2(a·n)n
func (a Vec2) Reflect(n Vec2) Vec2 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Lerp interpolates between a and b by t
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// IsFinite reports whether both components are finite numbers
func (a Vec2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// FromAngle returns a vector of the given length pointing at angle radians
func FromAngle(angle, length float64) Vec2 {
	sinA, cosA := math.Sincos(angle)
	return Vec2{X: cosA * length, Y: sinA * length}
}
