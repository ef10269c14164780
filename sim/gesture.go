package sim

import "flaglaunch/vmath"

// Gesture is the pointer drag state handed to Step, in normalized screen coordinates
type Gesture struct {
	Active    bool
	DragStart vmath.Vec2
	DragEnd   vmath.Vec2
}

// Press starts a drag at p, discarding any previous drag
func (g *Gesture) Press(p vmath.Vec2) {
	g.Active = true
	g.DragStart = p
	g.DragEnd = p
}

// Move updates the drag end while the pointer is held
func (g *Gesture) Move(p vmath.Vec2) {
	if g.Active {
		g.DragEnd = p
	}
}

// Release ends the drag. The vector stays in place until Step consumes it.
func (g *Gesture) Release() {
	g.Active = false
}

// Cancel ends the drag without a launch (pointer left the canvas)
func (g *Gesture) Cancel() {
	g.Active = false
	g.DragStart = g.DragEnd
}

// Drag returns DragEnd - DragStart
func (g Gesture) Drag() vmath.Vec2 {
	return g.DragEnd.Sub(g.DragStart)
}

// Consumed returns the gesture with the stored vectors reset to zero
func (g Gesture) Consumed() Gesture {
	return Gesture{Active: g.Active}
}
