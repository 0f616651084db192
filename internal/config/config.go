// Package config provides YAML-based configuration loading for the ninja
// runtime.
package config

// NinjaConfig contains all configuration for the platformer.
type NinjaConfig struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Clouds  CloudsConfig  `yaml:"clouds"`
	Leaves  LeavesConfig  `yaml:"leaves"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
}

// DisplayConfig defines the logical render resolution.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"` // Window pixels per logical pixel (desktop only)
}

// WorldConfig defines where the level comes from.
type WorldConfig struct {
	TileSize int    `yaml:"tile_size"`
	Map      string `yaml:"map"`     // Map file path; empty uses the builtin map
	Sprites  string `yaml:"sprites"` // Optional sprite sheet overriding builtin art
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// CloudsConfig defines the parallax cloud layer.
type CloudsConfig struct {
	Count int `yaml:"count"`
}

// LeavesConfig defines falling-leaf emission from trees.
type LeavesConfig struct {
	RateDivisor   float64 `yaml:"rate_divisor"` // Spawn when rate_divisor*rand < spawner area
	VelocityX     float64 `yaml:"velocity_x"`
	VelocityY     float64 `yaml:"velocity_y"`
	MaxStartFrame int     `yaml:"max_start_frame"`
}

// CameraConfig defines camera follow.
type CameraConfig struct {
	Damping float64 `yaml:"damping"` // Scroll closes 1/damping of the gap per tick
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction key stays held after a press
}
