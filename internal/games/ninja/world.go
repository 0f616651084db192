package ninja

import (
	"fmt"

	"github.com/vovakirdan/ninja/internal/assets"
	"github.com/vovakirdan/ninja/internal/config"
	"github.com/vovakirdan/ninja/internal/tilemap"
	"github.com/vovakirdan/ninja/internal/tilemap/formats"
)

// Tree foliage that sheds leaves: offset from the tree's top-left corner and
// size.
const (
	treeVariant  = 2
	foliageInset = 4
	foliageW     = 23
	foliageH     = 13
)

// fallDepth is how far below the lowest tile row the player may fall before
// respawning.
const fallDepth = 400

// Load reads configuration, builds the asset table and loads the map. It runs
// once; later calls are no-ops. Reset calls it when the caller did not.
func (g *Game) Load() error {
	if g.loaded {
		return nil
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	tbl, err := g.loadAssets(cfg)
	if err != nil {
		return err
	}

	m, source, err := g.loadMap(cfg)
	if err != nil {
		return err
	}
	if m.TileSize() != cfg.World.TileSize {
		g.log.Warn("map tile size differs from config", "map", m.TileSize(), "config", cfg.World.TileSize)
	}
	g.log.Info("map loaded", "source", source, "tiles", m.Len(), "offgrid", m.OffGridLen(), "tile_size", m.TileSize())

	g.cfg = cfg
	g.assets = tbl
	g.tiles = m
	g.loaded = true
	return nil
}

func (g *Game) loadConfig() (config.NinjaConfig, error) {
	if g.opts.Config != nil {
		cfg := *g.opts.Config
		cfg.Normalize()
		return cfg, nil
	}
	cfg, source, err := config.LoadNinjaFrom("")
	if err != nil {
		return cfg, err
	}
	g.log.Debug("config loaded", "source", source)
	return cfg, nil
}

func (g *Game) loadAssets(cfg config.NinjaConfig) (*assets.Table, error) {
	tbl := assets.Builtin().Clone()
	if bg := tbl.Image(assets.KeyBackground); bg == nil ||
		bg.Width() != cfg.Display.Width || bg.Height() != cfg.Display.Height {
		tbl.SetImage(assets.KeyBackground, assets.Background(cfg.Display.Width, cfg.Display.Height))
	}
	if cfg.World.Sprites != "" {
		sheet, err := assets.LoadSheetFile(cfg.World.Sprites)
		if err != nil {
			return nil, fmt.Errorf("ninja: sprites: %w", err)
		}
		if err := sheet.Apply(tbl); err != nil {
			return nil, fmt.Errorf("ninja: sprites %s: %w", cfg.World.Sprites, err)
		}
		g.log.Info("sprite sheet applied", "path", cfg.World.Sprites)
	}
	return tbl, nil
}

// loadMap picks the map source: an explicit file, a stored map, the config's
// map file, then the builtin map.
func (g *Game) loadMap(cfg config.NinjaConfig) (*tilemap.TileMap, string, error) {
	switch {
	case g.opts.MapPath != "":
		m, err := formats.LoadFile(g.opts.MapPath)
		if err != nil {
			return nil, "", fmt.Errorf("ninja: %w", err)
		}
		return m, g.opts.MapPath, nil
	case g.opts.StoredMap != "":
		if g.opts.Maps == nil {
			return nil, "", fmt.Errorf("ninja: stored map %q requested without a store", g.opts.StoredMap)
		}
		m, err := g.opts.Maps.LoadMap(g.opts.StoredMap)
		if err != nil {
			return nil, "", fmt.Errorf("ninja: %w", err)
		}
		return m, "store:" + g.opts.StoredMap, nil
	case cfg.World.Map != "":
		m, err := formats.LoadFile(cfg.World.Map)
		if err != nil {
			return nil, "", fmt.Errorf("ninja: %w", err)
		}
		return m, cfg.World.Map, nil
	default:
		m, err := formats.Default()
		if err != nil {
			return nil, "", fmt.Errorf("ninja: builtin map: %w", err)
		}
		return m, "builtin:" + formats.DefaultName, nil
	}
}
