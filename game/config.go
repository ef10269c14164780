package game

import "flaglaunch/sim"

// Config holds window and presentation settings plus the physics tuning
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels; one world unit spans it when the camera size is 1
	ScreenHeight int

	// Debug starts with the overlay visible
	Debug bool

	// CameraAnchor is the normalized screen x the camera keeps the player at
	CameraAnchor float64

	// ProfileDir receives CPU profiles captured after frame hitches; empty disables capture
	ProfileDir string

	// Physics is the simulation tuning
	Physics sim.Config
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  600,
		ScreenHeight: 600,
		CameraAnchor: 0.3,
		Physics:      sim.DefaultConfig(),
	}
}
