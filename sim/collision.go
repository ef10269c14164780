package sim

import (
	"math"

	"flaglaunch/terrain"
	"flaglaunch/vmath"
)

// collideVertical clamps to the ground and reflects only vel.Y.
// Horizontal friction applies while the entity is within band of the ground.
func collideVertical(tr terrain.Terrain, pos, vel *vmath.Vec2, c CollisionData, band, dt float64) {
	if tr.Above(*pos) < 0 {
		pos.Y = tr.Height(pos.X)
		if vel.Y > 0 {
			vel.Y *= -c.Bounce
		}
	}
	if tr.Above(*pos) <= band {
		vel.X *= math.Pow(c.Friction, dt)
	}
}

// collideSlope clamps to the ground and reflects the full velocity about the local normal,
// then damps the tangential part by friction^dt and the normal part by bounce.
func collideSlope(tr terrain.Terrain, pos, vel *vmath.Vec2, c CollisionData, dt float64) {
	if tr.Above(*pos) >= 0 {
		return
	}
	pos.Y = tr.Height(pos.X)

	n := tr.Normal(pos.X)
	t := tr.Tangent(pos.X)
	v := *vel
	approaching := v.Dot(n) < 0
	if approaching {
		v = v.Reflect(n)
	}

	vt := v.Dot(t) * math.Pow(c.Friction, dt)
	vn := v.Dot(n)
	if approaching {
		vn *= c.Bounce
	}
	*vel = t.Scale(vt).Add(n.Scale(vn))
}
