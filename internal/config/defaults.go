package config

import (
	_ "embed"
)

//go:embed defaults/ninja.yaml
var defaultNinjaYAML []byte

// DefaultNinjaConfig returns the default configuration.
func DefaultNinjaConfig() NinjaConfig {
	return NinjaConfig{
		Display: DisplayConfig{
			Width:  320,
			Height: 240,
			Scale:  2,
		},
		World: WorldConfig{
			TileSize: 16,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			SpawnY: 50,
			Width:  8,
			Height: 15,
		},
		Clouds: CloudsConfig{
			Count: 16,
		},
		Leaves: LeavesConfig{
			RateDivisor:   30000,
			VelocityX:     0.1,
			VelocityY:     0.3,
			MaxStartFrame: 20,
		},
		Camera: CameraConfig{
			Damping: 30,
		},
		Input: InputConfig{
			HoldTicks: 30,
		},
	}
}

// Normalize replaces out-of-range values with defaults.
func (c *NinjaConfig) Normalize() {
	d := DefaultNinjaConfig()
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		c.Display.Width, c.Display.Height = d.Display.Width, d.Display.Height
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = d.Display.Scale
	}
	if c.World.TileSize <= 0 {
		c.World.TileSize = d.World.TileSize
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		c.Player.Width, c.Player.Height = d.Player.Width, d.Player.Height
	}
	if c.Clouds.Count < 0 {
		c.Clouds.Count = 0
	}
	if c.Leaves.RateDivisor <= 0 {
		c.Leaves.RateDivisor = d.Leaves.RateDivisor
	}
	if c.Leaves.MaxStartFrame < 0 {
		c.Leaves.MaxStartFrame = 0
	}
	if c.Camera.Damping < 1 {
		c.Camera.Damping = d.Camera.Damping
	}
	if c.Input.HoldTicks <= 0 {
		c.Input.HoldTicks = d.Input.HoldTicks
	}
}
