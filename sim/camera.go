package sim

import (
	"math"

	"flaglaunch/vmath"
)

// Camera maps normalized screen space [0,1]² to world space: world = Pos + screen*Size.
// Physics never reads it.
type Camera struct {
	Pos  vmath.Vec2
	Size float64

	// Lag is the exponential follow factor per second (fraction of the offset remaining)
	Lag float64
}

// NewCamera creates a camera showing the unit square
func NewCamera() *Camera {
	return &Camera{Size: 1, Lag: 0.05}
}

// ScreenToWorld converts a normalized screen point to world coordinates
func (c *Camera) ScreenToWorld(p vmath.Vec2) vmath.Vec2 {
	return c.Pos.Add(p.Scale(c.Size))
}

// WorldToScreen converts a world point to normalized screen coordinates
func (c *Camera) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	if c.Size == 0 {
		return vmath.Zero()
	}
	return p.Sub(c.Pos).Scale(1 / c.Size)
}

// Follow eases the camera horizontally so target sits at screen x = anchor
func (c *Camera) Follow(target vmath.Vec2, anchor, dt float64) {
	want := target.X - anchor*c.Size
	k := 1 - math.Pow(c.Lag, dt)
	c.Pos.X += (want - c.Pos.X) * k
}
