package sim

import (
	"testing"

	"flaglaunch/vmath"
)

func TestGestureLifecycle(t *testing.T) {
	var g Gesture
	g.Move(vmath.Vec2{X: 0.9, Y: 0.9})
	if g.Active || g.DragEnd != vmath.Zero() {
		t.Fatalf("move while idle changed gesture: %+v", g)
	}

	g.Press(vmath.Vec2{X: 0.2, Y: 0.3})
	if !g.Active || g.DragStart != g.DragEnd {
		t.Fatalf("press: %+v", g)
	}
	g.Move(vmath.Vec2{X: 0.1, Y: 0.4})
	g.Release()
	if g.Active {
		t.Fatalf("release left gesture active")
	}
	want := vmath.Vec2{X: 0.1, Y: 0.4}.Sub(vmath.Vec2{X: 0.2, Y: 0.3})
	if g.Drag() != want {
		t.Fatalf("drag = %+v, want %+v", g.Drag(), want)
	}
	if c := g.Consumed(); c.Drag() != vmath.Zero() || c.DragStart != vmath.Zero() {
		t.Fatalf("consumed gesture kept vectors: %+v", c)
	}
}

func TestGestureCancelDiscardsDrag(t *testing.T) {
	var g Gesture
	g.Press(vmath.Vec2{X: 0.2, Y: 0.2})
	g.Move(vmath.Vec2{X: 0.6, Y: 0.6})
	g.Cancel()
	if g.Active {
		t.Fatalf("cancel left gesture active")
	}
	if g.Drag() != vmath.Zero() {
		t.Fatalf("cancelled drag = %+v, want zero", g.Drag())
	}
}

func TestPressRestartsDrag(t *testing.T) {
	var g Gesture
	g.Press(vmath.Vec2{X: 0.2, Y: 0.2})
	g.Move(vmath.Vec2{X: 0.6, Y: 0.6})
	g.Release()
	g.Press(vmath.Vec2{X: 0.5, Y: 0.5})
	if g.Drag() != vmath.Zero() {
		t.Fatalf("press kept previous drag: %+v", g)
	}
}
