package sim

import (
	"math"
	"testing"

	"flaglaunch/vmath"
)

func TestCameraRoundTrip(t *testing.T) {
	c := &Camera{Pos: vmath.Vec2{X: 3, Y: -1}, Size: 2}
	p := vmath.Vec2{X: 0.25, Y: 0.75}
	w := c.ScreenToWorld(p)
	if w != (vmath.Vec2{X: 3.5, Y: 0.5}) {
		t.Fatalf("ScreenToWorld = %+v", w)
	}
	if back := c.WorldToScreen(w); back != p {
		t.Fatalf("WorldToScreen = %+v, want %+v", back, p)
	}
}

func TestCameraFollowConverges(t *testing.T) {
	c := NewCamera()
	target := vmath.Vec2{X: 5, Y: 0.5}
	for i := 0; i < 600; i++ {
		c.Follow(target, 0.3, 1.0/60)
	}
	if want := 5 - 0.3; math.Abs(c.Pos.X-want) > 1e-3 {
		t.Fatalf("camera x = %f, want ≈%f", c.Pos.X, want)
	}
	if c.Pos.Y != 0 {
		t.Fatalf("camera moved vertically: %f", c.Pos.Y)
	}
}
