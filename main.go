package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"flaglaunch/game"
	"flaglaunch/sim"
)

func main() {
	config := game.DefaultConfig()

	width := flag.Int("width", config.ScreenWidth, "Window width in pixels")
	height := flag.Int("height", config.ScreenHeight, "Window height in pixels")
	debug := flag.Bool("debug", false, "Show the debug overlay (toggle with F3)")
	model := flag.String("model", config.Physics.PlayerModel.String(), "Player ground response: vertical or slope")
	particles := flag.Int("particles", config.Physics.ParticleCount, "Particles spawned on reaching the flag")
	seed := flag.Int64("seed", 0, "Particle RNG seed (0 = time based)")
	profileDir := flag.String("profile-dir", "", "Write a CPU profile here after frame hitches")
	flag.Parse()

	playerModel, err := sim.ParseCollisionModel(*model)
	if err != nil {
		log.Fatal(err)
	}

	config.ScreenWidth = *width
	config.ScreenHeight = *height
	config.Debug = *debug
	config.ProfileDir = *profileDir
	config.Physics.PlayerModel = playerModel
	config.Physics.ParticleCount = *particles
	config.Physics.Seed = *seed

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Flag Launch")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
