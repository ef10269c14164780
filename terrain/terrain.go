// Package terrain holds the analytic ground curve used for collision, stick placement
// and rendering. Y grows downward, matching screen space.
package terrain

import (
	"math"

	"flaglaunch/vmath"
)

// SlopeStep is the forward-difference step used to estimate the local slope
const SlopeStep = 1e-4

const (
	valleyStep        = 1e-3
	valleySearchSteps = 100000
)

// Wave is one sine term of the ground curve
type Wave struct {
	Amp  float64
	Freq float64
}

// Terrain is a closed-form ground: Base + Σ Amp·sin(Freq·x)
type Terrain struct {
	Base  float64
	Waves []Wave
}

// Default returns the rolling hills the level is played on
func Default() Terrain {
	return Terrain{
		Base: 0.8,
		Waves: []Wave{
			{Amp: -0.05, Freq: 10},
			{Amp: 0.05, Freq: 2},
		},
	}
}

// Flat returns a terrain with constant height
func Flat(height float64) Terrain {
	return Terrain{Base: height}
}

// Height returns the ground height at world x
func (t Terrain) Height(x float64) float64 {
	h := t.Base
	for _, w := range t.Waves {
		h += w.Amp * math.Sin(w.Freq*x)
	}
	return h
}

// Slope returns dy/dx at x by forward difference
func (t Terrain) Slope(x float64) float64 {
	return (t.Height(x+SlopeStep) - t.Height(x)) / SlopeStep
}

// Tangent returns the unit ground tangent at x, pointing toward +x
func (t Terrain) Tangent(x float64) vmath.Vec2 {
	return vmath.Vec2{X: 1, Y: t.Slope(x)}.Normalize()
}

// Normal returns the unit ground normal at x, pointing out of the ground (toward -y)
func (t Terrain) Normal(x float64) vmath.Vec2 {
	s := t.Slope(x)
	return vmath.Vec2{X: s, Y: -1}.Normalize()
}

// Above reports how far p is above the ground; negative means it has penetrated
func (t Terrain) Above(p vmath.Vec2) float64 {
	return t.Height(p.X) - p.Y
}

// Valley returns the resting point nearest to x in the downhill direction: a local
// maximum of Height, the bottom of a trough on screen. Ground with no slope at x returns x.
func (t Terrain) Valley(x float64) float64 {
	s := t.Slope(x)
	if s == 0 || math.IsNaN(s) {
		return x
	}
	dir := 1.0
	if s < 0 {
		dir = -1
	}
	lo := x
	for i := 0; i < valleySearchSteps; i++ {
		hi := lo + dir*valleyStep
		if t.Slope(hi)*dir > 0 {
			lo = hi
			continue
		}
		// the slope changes sign inside [lo, hi]
		for j := 0; j < 48; j++ {
			mid := (lo + hi) / 2
			if t.Slope(mid)*dir > 0 {
				lo = mid
			} else {
				hi = mid
			}
		}
		return (lo + hi) / 2
	}
	return x
}

// Sample returns n+1 evenly spaced points of the curve over [x0, x1]
func (t Terrain) Sample(x0, x1 float64, n int) []vmath.Vec2 {
	if n < 1 {
		n = 1
	}
	pts := make([]vmath.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(n)
		pts = append(pts, vmath.Vec2{X: x, Y: t.Height(x)})
	}
	return pts
}
