package terrain

import (
	"math"
	"testing"

	"flaglaunch/vmath"
)

func TestDefaultHeightMatchesCurve(t *testing.T) {
	tr := Default()
	for _, x := range []float64{0, 0.1, 0.37, 1, 2.5, -3} {
		want := 0.8 - 0.05*math.Sin(10*x) + 0.05*math.Sin(2*x)
		if got := tr.Height(x); math.Abs(got-want) > 1e-12 {
			t.Fatalf("Height(%f) = %f, want %f", x, got, want)
		}
	}
}

func TestFlatTerrain(t *testing.T) {
	tr := Flat(0.5)
	if got := tr.Slope(3); got != 0 {
		t.Fatalf("flat slope = %f, want 0", got)
	}
	n := tr.Normal(3)
	if n.X != 0 || n.Y != -1 {
		t.Fatalf("flat normal = %+v, want (0,-1)", n)
	}
	tg := tr.Tangent(3)
	if tg.X != 1 || tg.Y != 0 {
		t.Fatalf("flat tangent = %+v, want (1,0)", tg)
	}
}

func TestNormalPerpendicularToTangent(t *testing.T) {
	tr := Default()
	for x := -1.0; x <= 1.0; x += 0.13 {
		n := tr.Normal(x)
		tg := tr.Tangent(x)
		if d := n.Dot(tg); math.Abs(d) > 1e-9 {
			t.Fatalf("x=%f normal·tangent = %g", x, d)
		}
		if math.Abs(n.Len()-1) > 1e-9 || math.Abs(tg.Len()-1) > 1e-9 {
			t.Fatalf("x=%f non-unit basis n=%+v t=%+v", x, n, tg)
		}
		if n.Y >= 0 {
			t.Fatalf("x=%f normal points into the ground: %+v", x, n)
		}
	}
}

func TestSlopeApproximatesDerivative(t *testing.T) {
	tr := Default()
	x := 0.42
	want := -0.5*math.Cos(10*x) + 0.1*math.Cos(2*x)
	if got := tr.Slope(x); math.Abs(got-want) > 1e-3 {
		t.Fatalf("Slope(%f) = %f, want ≈%f", x, got, want)
	}
}

func TestSample(t *testing.T) {
	pts := Default().Sample(0, 1, 100)
	if len(pts) != 101 {
		t.Fatalf("len = %d, want 101", len(pts))
	}
	if pts[0].X != 0 || pts[100].X != 1 {
		t.Fatalf("endpoints = %f..%f", pts[0].X, pts[100].X)
	}
}

func TestValleyIsLocalLowPoint(t *testing.T) {
	tr := Default()
	tests := []struct {
		name   string
		from   float64
		lo, hi float64
	}{
		{"downhill to the right", 0.8, 1.0, 1.2},
		{"downhill to the left", 0.7, 0.4, 0.55},
		{"already at the bottom", 1.0875, 1.0, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tr.Valley(tt.from)
			if v < tt.lo || v > tt.hi {
				t.Fatalf("Valley(%f) = %f, want in [%f, %f]", tt.from, v, tt.lo, tt.hi)
			}
			if d := -0.5*math.Cos(10*v) + 0.1*math.Cos(2*v); math.Abs(d) > 1e-3 {
				t.Fatalf("Valley(%f) = %f has derivative %f", tt.from, v, d)
			}
			h := tr.Height(v)
			if tr.Height(v-0.01) > h || tr.Height(v+0.01) > h {
				t.Fatalf("Valley(%f) = %f is not a trough", tt.from, v)
			}
		})
	}
}

func TestValleyOnFlatGround(t *testing.T) {
	if v := Flat(0.5).Valley(3.25); v != 3.25 {
		t.Fatalf("flat valley = %f, want 3.25", v)
	}
}

func TestAbove(t *testing.T) {
	tr := Flat(0.5)
	if got := tr.Above(vmath.Vec2{X: 2, Y: 0.3}); math.Abs(got-0.2) > 1e-12 {
		t.Fatalf("Above = %f, want 0.2", got)
	}
	if got := tr.Above(vmath.Vec2{X: 2, Y: 0.6}); got >= 0 {
		t.Fatalf("penetrating point reported above ground: %f", got)
	}
}
