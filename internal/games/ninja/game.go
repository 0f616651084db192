// Package ninja implements the platformer: a ninja running, jumping,
// wall-sliding and dashing through a tile map under drifting clouds and
// falling leaves.
package ninja

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja/internal/assets"
	"github.com/vovakirdan/ninja/internal/clouds"
	"github.com/vovakirdan/ninja/internal/config"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/entity"
	"github.com/vovakirdan/ninja/internal/gfx"
	"github.com/vovakirdan/ninja/internal/particle"
	"github.com/vovakirdan/ninja/internal/registry"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

// ID is the registry identifier.
const ID = "ninja"

// Dash sparks.
const (
	sparkCount    = 8
	sparkMaxFrame = 7
)

func init() {
	registry.Register(ID, func(opts registry.Options) registry.Game {
		return New(opts)
	})
}

// Game owns the world and sequences one update per tick.
type Game struct {
	opts   registry.Options
	log    *log.Logger
	loaded bool

	// Loaded once, read-only afterwards.
	cfg    config.NinjaConfig
	assets *assets.Table
	tiles  *tilemap.TileMap

	rc        core.RuntimeConfig
	rng       *rand.Rand
	player    *entity.Player
	clouds    *clouds.Layer
	particles particle.System
	spawners  []particle.Spawner
	camera    Camera
	killY     float64
	paused    bool
	tickCount int
	respawns  int
}

// New creates a game. Nothing is loaded until Load or Reset.
func New(opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts: opts,
		log:  logger.WithPrefix(ID),
		cfg:  config.DefaultNinjaConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ninja Game"
}

// Resolution returns the logical surface size.
func (g *Game) Resolution() (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}

// Config returns the active configuration.
func (g *Game) Config() config.NinjaConfig {
	return g.cfg
}

// Tiles returns the loaded map.
func (g *Game) Tiles() *tilemap.TileMap {
	return g.tiles
}

// Player returns the player entity.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Reset rebuilds the world from the loaded map. If loading fails the game
// falls back to an empty map so the platform can still run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if err := g.Load(); err != nil {
		g.log.Error("load failed, starting with an empty map", "err", err)
		g.assets = assets.Builtin()
		g.tiles = tilemap.New(g.cfg.World.TileSize)
		g.loaded = true
	}

	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.paused = false
	g.tickCount = 0
	g.respawns = 0
	g.particles.Clear()
	g.camera = Camera{Damping: g.cfg.Camera.Damping}

	g.clouds = clouds.New(g.assets.Images(assets.KeyClouds), g.cfg.Clouds.Count, g.rng)
	g.spawnPlayer()

	g.spawners = g.spawners[:0]
	for _, tree := range g.tiles.Extract([]tilemap.ID{{Kind: tilemap.KindLargeDecor, Variant: treeVariant}}, true) {
		g.spawners = append(g.spawners, particle.Spawner{
			Area:        core.NewRect(int(tree.Pos.X)+foliageInset, int(tree.Pos.Y)+foliageInset, foliageW, foliageH),
			RateDivisor: g.cfg.Leaves.RateDivisor,
		})
	}

	g.killY = math.Inf(1)
	if _, hi, ok := g.tiles.Bounds(); ok {
		g.killY = float64((hi.Y+1)*g.tiles.TileSize() + fallDepth)
	}
}

func (g *Game) spawnPlayer() {
	p := g.cfg.Player
	g.player = entity.NewPlayer(g.assets, core.V(p.SpawnX, p.SpawnY), p.Width, p.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.rc)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	w, h := g.Resolution()
	cx, cy := g.player.Center()
	g.camera.Follow(cx, cy, w, h)

	g.spawnLeaves()
	g.clouds.Update()
	g.player.Update(g.tiles, core.V(in.Horizontal(), 0))
	g.particles.Step(particle.LeafDrift)

	if g.player.Pos.Y > g.killY {
		g.respawns++
		g.spawnPlayer()
	}

	// Key presses land after the update, as events do at the end of a frame.
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	if in.Has(core.ActionDash) && g.player.Dash() {
		g.spawnSparks()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) spawnLeaves() {
	tmpl := g.assets.Anim(assets.KeyLeaf)
	if tmpl == nil {
		return
	}
	vel := core.V(g.cfg.Leaves.VelocityX, g.cfg.Leaves.VelocityY)
	for _, sp := range g.spawners {
		pos, ok := sp.Maybe(g.rng)
		if !ok {
			continue
		}
		frame := g.rng.Intn(g.cfg.Leaves.MaxStartFrame + 1)
		g.particles.Add(particle.New(particle.KindLeaf, tmpl, pos, vel, frame))
	}
}

// spawnSparks bursts particles from the player's center when a dash starts.
func (g *Game) spawnSparks() {
	tmpl := g.assets.Anim(assets.KeyParticle)
	if tmpl == nil {
		return
	}
	cx, cy := g.player.Center()
	center := core.V(float64(cx), float64(cy))
	for range sparkCount {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := g.rng.Float64()*0.5 + 0.5
		vel := core.V(math.Cos(angle)*speed, math.Sin(angle)*speed)
		g.particles.Add(particle.New(particle.KindParticle, tmpl, center, vel, g.rng.Intn(sparkMaxFrame+1)))
	}
}

// Render draws the frame back to front: background, clouds, tiles, player,
// particles.
func (g *Game) Render(dst gfx.Surface) {
	offset := g.camera.Offset()
	if bg := g.assets.Image(assets.KeyBackground); bg != nil {
		dst.Blit(bg, 0, 0, false)
	}
	g.clouds.Render(dst, offset)
	g.tiles.Render(dst, offset, g.assets)
	g.player.Render(dst, offset)
	g.particles.Render(dst, offset)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Tick:      g.tickCount,
		Paused:    g.paused,
		Particles: g.particles.Len(),
		Respawns:  g.respawns,
	}
	if g.player != nil {
		st.Action = g.player.Action().String()
	}
	return st
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)
