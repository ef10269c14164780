package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"flaglaunch/sim"
	"flaglaunch/vmath"
)

// PointerInput feeds mouse and touch events into a gesture
type PointerInput struct {
	touches []ebiten.TouchID
	touch   ebiten.TouchID
	touched bool

	// Size of the canvas in pixels, set by Layout
	width, height int
}

// NewPointerInput creates a pointer reader for a canvas of the given size
func NewPointerInput(width, height int) *PointerInput {
	return &PointerInput{
		touches: make([]ebiten.TouchID, 0, 4),
		width:   width,
		height:  height,
	}
}

// normalize maps canvas pixels to normalized screen space; both axes are divided by the height
func (p *PointerInput) normalize(x, y int) vmath.Vec2 {
	h := float64(p.height)
	if h <= 0 {
		h = 1
	}
	return vmath.Vec2{X: float64(x) / h, Y: float64(y) / h}
}

func (p *PointerInput) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Update applies this tick's pointer events to g
func (p *PointerInput) Update(g *sim.Gesture) {
	if p.updateTouch(g) {
		return
	}

	x, y := ebiten.CursorPosition()
	applyMouse(g, mouseState{
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inside:   p.inside(x, y),
		at:       p.normalize(x, y),
	})
}

// mouseState is one tick of left-button edges and cursor position
type mouseState struct {
	pressed, released, held bool
	inside                  bool
	at                      vmath.Vec2
}

// applyMouse folds one tick of mouse state into g.
// Leaving the canvas cancels the drag, including a release outside it.
func applyMouse(g *sim.Gesture, m mouseState) {
	switch {
	case m.pressed:
		if m.inside {
			g.Press(m.at)
		}
	case g.Active && !m.inside:
		g.Cancel()
	case m.released:
		if g.Active {
			g.Release()
		}
	case g.Active && m.held:
		g.Move(m.at)
	}
}

// updateTouch tracks the first finger down; it reports whether a touch owns the gesture
func (p *PointerInput) updateTouch(g *sim.Gesture) bool {
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if !p.touched && len(p.touches) > 0 {
		p.touch = p.touches[0]
		p.touched = true
		g.Press(p.normalize(ebiten.TouchPosition(p.touch)))
		return true
	}
	if !p.touched {
		return false
	}
	if inpututil.IsTouchJustReleased(p.touch) {
		p.touched = false
		g.Release()
		return true
	}
	g.Move(p.normalize(ebiten.TouchPosition(p.touch)))
	return true
}

