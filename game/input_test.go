package game

import (
	"testing"

	"flaglaunch/sim"
	"flaglaunch/vmath"
)

func TestApplyMouse(t *testing.T) {
	start := vmath.Vec2{X: 0.5, Y: 0.5}
	pulled := vmath.Vec2{X: 0.3, Y: 0.6}

	tests := []struct {
		name     string
		last     mouseState
		wantDrag vmath.Vec2
	}{
		{
			name:     "release inside launches",
			last:     mouseState{released: true, inside: true, at: pulled},
			wantDrag: pulled.Sub(start),
		},
		{
			name:     "release outside cancels",
			last:     mouseState{released: true, inside: false, at: vmath.Vec2{X: -0.1, Y: 0.6}},
			wantDrag: vmath.Zero(),
		},
		{
			name:     "leaving while held cancels",
			last:     mouseState{held: true, inside: false, at: vmath.Vec2{X: 1.2, Y: 0.6}},
			wantDrag: vmath.Zero(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g sim.Gesture
			applyMouse(&g, mouseState{pressed: true, held: true, inside: true, at: start})
			applyMouse(&g, mouseState{held: true, inside: true, at: pulled})
			applyMouse(&g, tt.last)

			if g.Active {
				t.Fatalf("gesture still active: %+v", g)
			}
			if d := g.Drag(); d != tt.wantDrag {
				t.Fatalf("drag = %+v, want %+v", d, tt.wantDrag)
			}
		})
	}
}

func TestApplyMousePressOutsideIgnored(t *testing.T) {
	var g sim.Gesture
	applyMouse(&g, mouseState{pressed: true, held: true, inside: false, at: vmath.Vec2{X: -1}})
	if g.Active {
		t.Fatalf("press outside the canvas started a drag: %+v", g)
	}
}
