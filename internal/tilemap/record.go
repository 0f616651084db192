package tilemap

import (
	"fmt"

	"github.com/vovakirdan/ninja/internal/core"
)

// TileRecord is the file shape of one tile.
type TileRecord struct {
	Type    string     `json:"type" yaml:"type"`
	Variant int        `json:"variant" yaml:"variant"`
	Pos     [2]float64 `json:"pos" yaml:"pos,flow"`
}

// Record is the persisted form of a map: the grid keyed by "x;y", the cell
// size, and the off-grid list.
type Record struct {
	TileMap  map[string]TileRecord `json:"tilemap" yaml:"tilemap"`
	TileSize int                   `json:"tile_size" yaml:"tile_size"`
	OffGrid  []TileRecord          `json:"offgrid" yaml:"offgrid"`
}

// Record snapshots the map for saving.
func (m *TileMap) Record() Record {
	rec := Record{
		TileMap:  make(map[string]TileRecord, len(m.tiles)),
		TileSize: m.tileSize,
		OffGrid:  make([]TileRecord, 0, len(m.offgrid)),
	}
	for k, t := range m.tiles {
		rec.TileMap[k.String()] = TileRecord{
			Type:    t.Kind.String(),
			Variant: t.Variant,
			Pos:     [2]float64{float64(k.X), float64(k.Y)},
		}
	}
	for _, t := range m.offgrid {
		rec.OffGrid = append(rec.OffGrid, TileRecord{
			Type:    t.Kind.String(),
			Variant: t.Variant,
			Pos:     [2]float64{t.Pos.X, t.Pos.Y},
		})
	}
	return rec
}

// Load replaces the grid, off-grid list and tile size with the record's
// contents. On error the map is left unchanged.
func (m *TileMap) Load(rec Record) error {
	if rec.TileSize < 1 {
		return fmt.Errorf("tilemap: invalid tile_size %d", rec.TileSize)
	}

	tiles := make(map[GridKey]Tile, len(rec.TileMap))
	for ks, tr := range rec.TileMap {
		key, err := ParseGridKey(ks)
		if err != nil {
			return err
		}
		kind, err := ParseKind(tr.Type)
		if err != nil {
			return fmt.Errorf("tilemap: tile %s: %w", ks, err)
		}
		tiles[key] = Tile{
			Kind:    kind,
			Variant: tr.Variant,
			Pos:     core.V(float64(key.X), float64(key.Y)),
		}
	}

	offgrid := make([]Tile, 0, len(rec.OffGrid))
	for i, tr := range rec.OffGrid {
		kind, err := ParseKind(tr.Type)
		if err != nil {
			return fmt.Errorf("tilemap: offgrid %d: %w", i, err)
		}
		offgrid = append(offgrid, Tile{
			Kind:    kind,
			Variant: tr.Variant,
			Pos:     core.V(tr.Pos[0], tr.Pos[1]),
		})
	}

	m.tiles = tiles
	m.offgrid = offgrid
	m.tileSize = rec.TileSize
	return nil
}

// FromRecord builds a new map from a record.
func FromRecord(rec Record) (*TileMap, error) {
	m := New(rec.TileSize)
	if err := m.Load(rec); err != nil {
		return nil, err
	}
	return m, nil
}
