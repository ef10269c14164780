package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"flaglaunch/sim"
	"flaglaunch/vmath"
)

var (
	colorDebugOrigin   = color.RGBA{R: 255, A: 255}
	colorDebugVelocity = color.RGBA{G: 255, A: 255}
	colorDebugGround   = color.RGBA{B: 255, A: 255}
)

var velocities = donburi.NewQuery(filter.Contains(sim.Position, sim.Velocity))

// drawDebug overlays entity origins, velocity vectors, the exact ground curve and the snapshot text
func (g *Game) drawDebug(screen *ebiten.Image) {
	w := g.sim.World()
	r := g.renderer

	pts := g.sim.Terrain().Sample(r.camera.Pos.X, r.camera.Pos.X+r.camera.Size*r.width/r.height, 100)
	for i := 1; i < len(pts); i++ {
		x0, y0 := r.toPixel(pts[i-1])
		x1, y1 := r.toPixel(pts[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorDebugGround, true)
	}

	velocities.Each(w, func(e *donburi.Entry) {
		pos := *sim.Position.Get(e)
		x0, y0 := r.toPixel(pos)
		x1, y1 := r.toPixel(pos.Add(*sim.Velocity.Get(e)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorDebugVelocity, true)
		vector.DrawFilledRect(screen, x0-2, y0-2, 4, 4, colorDebugOrigin, false)
	})

	ebitenutil.DebugPrint(screen, formatSnapshot(g.sim.Snapshot(), g.paused))
}

func formatVec(v vmath.Vec2) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

func formatSnapshot(s sim.DebugSnapshot, paused bool) string {
	return fmt.Sprintf(
		"dt: %.3f paused: %t\nplayer pos: %s vel: %s grounded: %t\ndrag: active=%t %s -> %s\nentities: %d particles: %d wins: %d rejected: %d",
		s.DT, paused,
		formatVec(s.MoverPos), formatVec(s.MoverVel), s.Grounded,
		s.Gesture.Active, formatVec(s.Gesture.DragStart), formatVec(s.Gesture.DragEnd),
		s.Entities, s.Particles, s.Wins, s.Rejected,
	)
}
