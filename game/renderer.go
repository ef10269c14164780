package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/image/colornames"

	"flaglaunch/sim"
	"flaglaunch/vmath"
)

var (
	colorSky        = colornames.White
	colorGround     = colornames.Darkolivegreen
	colorGroundEdge = colornames.Darkgreen
	colorShadow     = color.RGBA{R: 0, G: 0, B: 0, A: 50}
	colorPole       = colornames.Dimgray
	colorDrag       = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

var (
	shadows = donburi.NewQuery(filter.Contains(sim.Shadow, sim.Position))
	bodies  = donburi.NewQuery(filter.Contains(sim.Body, sim.Position))
	banners = donburi.NewQuery(filter.Contains(sim.Banner, sim.Position))
	sparks  = donburi.NewQuery(filter.Contains(sim.Particle, sim.Position))
)

// groundColumn is the pixel width of one terrain fill strip
const groundColumn = 3

// Renderer draws the world through the camera. It never writes to entities.
type Renderer struct {
	camera *sim.Camera
	width  float64
	height float64
}

// NewRenderer creates a new renderer
func NewRenderer(camera *sim.Camera, width, height int) *Renderer {
	return &Renderer{
		camera: camera,
		width:  float64(width),
		height: float64(height),
	}
}

// toPixel converts world coordinates to canvas pixels
func (r *Renderer) toPixel(p vmath.Vec2) (float32, float32) {
	s := r.camera.WorldToScreen(p)
	return float32(s.X * r.height), float32(s.Y * r.height)
}

// toLength converts a world length to pixels
func (r *Renderer) toLength(l float64) float32 {
	if r.camera.Size == 0 {
		return 0
	}
	return float32(l / r.camera.Size * r.height)
}

// Render draws terrain, shadows, flag, player, particles and the drag preview
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Simulation, g sim.Gesture) {
	screen.Fill(colorSky)
	w := s.World()

	r.drawGround(screen, s)
	shadows.Each(w, func(e *donburi.Entry) {
		r.drawShadow(screen, s, e)
	})
	banners.Each(w, func(e *donburi.Entry) {
		r.drawFlag(screen, e)
	})
	bodies.Each(w, func(e *donburi.Entry) {
		b := sim.Body.Get(e)
		x, y := r.toPixel(*sim.Position.Get(e))
		rad := r.toLength(b.Radius)
		// the ball rests on the ground, so its centre sits one radius up
		vector.DrawFilledCircle(screen, x, y-rad, rad, b.Color, true)
	})
	sparks.Each(w, func(e *donburi.Entry) {
		p := sim.Particle.Get(e)
		x, y := r.toPixel(*sim.Position.Get(e))
		clr := p.Color
		if e.HasComponent(sim.Age) {
			clr.A = fade(sim.Age.Get(e))
		}
		vector.DrawFilledCircle(screen, x, y, r.toLength(p.Size), clr, true)
	})

	if g.Active {
		x0, y0 := float32(g.DragStart.X*r.height), float32(g.DragStart.Y*r.height)
		x1, y1 := float32(g.DragEnd.X*r.height), float32(g.DragEnd.Y*r.height)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, colorDrag, true)
	}
}

// fade returns the alpha of a particle from its remaining life
func fade(a *sim.AgeData) uint8 {
	if !a.Mortal || a.TTL <= 0 {
		return 255
	}
	left := 1 - a.Age/a.TTL
	left = math.Max(0, math.Min(1, left))
	return uint8(255 * left)
}

func (r *Renderer) drawGround(screen *ebiten.Image, s *sim.Simulation) {
	tr := s.Terrain()
	var prevX, prevY float32
	for px := 0; px <= int(r.width)+groundColumn; px += groundColumn {
		wx := r.camera.ScreenToWorld(vmath.Vec2{X: float64(px) / r.height}).X
		x, y := r.toPixel(vmath.Vec2{X: wx, Y: tr.Height(wx)})
		vector.DrawFilledRect(screen, x, y, groundColumn, float32(r.height)-y, colorGround, false)
		if px > 0 {
			vector.StrokeLine(screen, prevX, prevY, x, y, 2, colorGroundEdge, true)
		}
		prevX, prevY = x, y
	}
}

// drawShadow draws a blob on the ground under e that shrinks with altitude
func (r *Renderer) drawShadow(screen *ebiten.Image, s *sim.Simulation, e *donburi.Entry) {
	pos := *sim.Position.Get(e)
	h := s.Terrain().Height(pos.X)
	size := *sim.Shadow.Get(e) * math.Max(0.2, 1-(h-pos.Y)*2)
	x, y := r.toPixel(vmath.Vec2{X: pos.X, Y: h})
	rad := r.toLength(size)
	vector.DrawFilledRect(screen, x-rad, y-rad/4, 2*rad, rad/2, colorShadow, true)
}

// drawFlag draws a pole swinging by the entity's rotation with a pennant at its top
func (r *Renderer) drawFlag(screen *ebiten.Image, e *donburi.Entry) {
	b := sim.Banner.Get(e)
	base := *sim.Position.Get(e)
	rot := 0.0
	if e.HasComponent(sim.Rotation) {
		rot = *sim.Rotation.Get(e)
	}
	up := vmath.Vec2{Y: -b.Height}.Rotate(rot)
	top := base.Add(up)
	mid := base.Add(up.Scale(0.7))
	tip := top.Lerp(mid, 0.5).Add(vmath.Vec2{X: b.Height * 0.5}.Rotate(rot))

	bx, by := r.toPixel(base)
	tx, ty := r.toPixel(top)
	mx, my := r.toPixel(mid)
	fx, fy := r.toPixel(tip)
	vector.StrokeLine(screen, bx, by, tx, ty, 2, colorPole, true)

	// fill the pennant with lines fanned from the tip
	const strips = 12
	for i := 0; i <= strips; i++ {
		t := float32(i) / strips
		vector.StrokeLine(screen, fx, fy, tx+(mx-tx)*t, ty+(my-ty)*t, 1.5, b.Color, true)
	}
}
