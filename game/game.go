// Package game runs the simulation inside an ebiten window: it owns the frame timer,
// turns pointer events into a gesture and draws the world after each step.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"flaglaunch/sim"
	"flaglaunch/terrain"
)

// Game implements ebiten.Game and is the sole caller of Simulation.Step
type Game struct {
	config   Config
	sim      *sim.Simulation
	timer    *sim.FrameTimer
	camera   *sim.Camera
	renderer *Renderer
	input    *PointerInput
	profiler *Profiler

	gesture sim.Gesture
	paused  bool
	debug   bool
}

// NewGame builds the level and the presentation around it
func NewGame(config Config) (*Game, error) {
	s, err := sim.NewLevel(config.Physics, terrain.Default())
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	camera := sim.NewCamera()
	g := &Game{
		config:   config,
		sim:      s,
		timer:    sim.NewFrameTimer(sim.SystemClock{}, config.Physics.MaxDelta),
		camera:   camera,
		renderer: NewRenderer(camera, config.ScreenWidth, config.ScreenHeight),
		input:    NewPointerInput(config.ScreenWidth, config.ScreenHeight),
		profiler: NewProfiler(config.ProfileDir),
		debug:    config.Debug,
	}
	return g, nil
}

// restart rebuilds the level in place
func (g *Game) restart() error {
	if err := g.sim.Reset(); err != nil {
		return err
	}
	g.gesture = sim.Gesture{}
	g.camera.Pos.X = 0
	g.timer.Reset()
	log.Printf("Level restarted")
	return nil
}

// Update runs exactly one simulation step per tick unless paused
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
	}
	if g.paused {
		return nil
	}

	g.input.Update(&g.gesture)

	dt := g.timer.Tick()
	if g.timer.Hitch && g.profiler.Enabled() {
		if err := g.profiler.NoticeHitch(g.timer.Raw, g.sim.World().Len()); err == nil {
			log.Printf("Frame hitch of %.0f ms, capturing profile", g.timer.Raw*1000)
		}
	}

	g.gesture = g.sim.Step(dt, g.gesture)

	if mover, ok := g.sim.Mover(); ok {
		g.camera.Follow(*sim.Position.Get(mover), g.config.CameraAnchor, dt)
	}
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.sim, g.gesture)
	if g.debug {
		g.drawDebug(screen)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
