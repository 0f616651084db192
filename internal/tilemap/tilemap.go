// Package tilemap holds the static tile world: the grid of collidable and
// decorative tiles, the free-placed off-grid decorations, and the spatial
// queries the physics pass runs against them.
package tilemap

import (
	"math"
	"sort"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

// neighborOffsets is the 3x3 query neighborhood: center, E, W, S, SE, SW, N,
// NE, NW.
var neighborOffsets = [9]GridKey{
	{0, 0},
	{1, 0},
	{-1, 0},
	{0, 1},
	{1, 1},
	{-1, 1},
	{0, -1},
	{1, -1},
	{-1, -1},
}

// ImageSource resolves a tile appearance to its sprite.
type ImageSource interface {
	TileImage(kind Kind, variant int) *gfx.Image
}

// TileMap is the authoritative static world.
type TileMap struct {
	tileSize int
	tiles    map[GridKey]Tile
	offgrid  []Tile
}

// New creates an empty map with the given cell size in pixels.
func New(tileSize int) *TileMap {
	if tileSize < 1 {
		tileSize = 16
	}
	return &TileMap{
		tileSize: tileSize,
		tiles:    make(map[GridKey]Tile),
	}
}

// TileSize returns the cell size in pixels.
func (m *TileMap) TileSize() int {
	return m.tileSize
}

// Len returns the number of grid tiles.
func (m *TileMap) Len() int {
	return len(m.tiles)
}

// OffGridLen returns the number of off-grid tiles.
func (m *TileMap) OffGridLen() int {
	return len(m.offgrid)
}

// Place inserts or overwrites the grid tile at key.
func (m *TileMap) Place(key GridKey, kind Kind, variant int) {
	m.tiles[key] = Tile{
		Kind:    kind,
		Variant: variant,
		Pos:     core.V(float64(key.X), float64(key.Y)),
	}
}

// PlaceOffGrid appends a decoration at a pixel position. Off-grid tiles draw
// in insertion order, before the grid.
func (m *TileMap) PlaceOffGrid(kind Kind, variant int, pos core.Vec2) {
	m.offgrid = append(m.offgrid, Tile{Kind: kind, Variant: variant, Pos: pos})
}

// Tile returns the grid tile at key.
func (m *TileMap) Tile(key GridKey) (Tile, bool) {
	t, ok := m.tiles[key]
	return t, ok
}

// OffGrid returns a copy of the off-grid list.
func (m *TileMap) OffGrid() []Tile {
	out := make([]Tile, len(m.offgrid))
	copy(out, m.offgrid)
	return out
}

// Keys returns every grid key sorted by row, then column.
func (m *TileMap) Keys() []GridKey {
	keys := make([]GridKey, 0, len(m.tiles))
	for k := range m.tiles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

// Bounds returns the smallest and largest occupied grid coordinates.
// ok is false for an empty grid.
func (m *TileMap) Bounds() (lo, hi GridKey, ok bool) {
	for k := range m.tiles {
		if !ok {
			lo, hi, ok = k, k, true
			continue
		}
		lo.X = min(lo.X, k.X)
		lo.Y = min(lo.Y, k.Y)
		hi.X = max(hi.X, k.X)
		hi.Y = max(hi.Y, k.Y)
	}
	return lo, hi, ok
}

// Extract returns copies of every tile whose (kind, variant) is listed in ids.
// Off-grid matches come first in list order, then grid matches in key order
// with positions converted to pixels. When keep is false the matches are
// removed from the map.
func (m *TileMap) Extract(ids []ID, keep bool) []Tile {
	want := make(map[ID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var matches []Tile

	kept := m.offgrid[:0:0]
	for _, t := range m.offgrid {
		if want[t.ID()] {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		kept = append(kept, t)
	}
	m.offgrid = kept

	ts := float64(m.tileSize)
	for _, k := range m.Keys() {
		t := m.tiles[k]
		if !want[t.ID()] {
			continue
		}
		t.Pos = t.Pos.Scale(ts)
		matches = append(matches, t)
		if !keep {
			delete(m.tiles, k)
		}
	}

	return matches
}

// cellAt converts a pixel position to the containing grid cell.
func (m *TileMap) cellAt(pixel core.Vec2) GridKey {
	ts := float64(m.tileSize)
	return GridKey{
		X: int(math.Floor(pixel.X / ts)),
		Y: int(math.Floor(pixel.Y / ts)),
	}
}

// TilesAround returns the tiles present in the 3x3 cell neighborhood of a
// pixel position, in neighborhood order.
func (m *TileMap) TilesAround(pixel core.Vec2) []Tile {
	center := m.cellAt(pixel)
	tiles := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if t, ok := m.tiles[center.Add(off.X, off.Y)]; ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// PhysicsRectsAround returns the pixel boxes of the collidable tiles around a
// pixel position.
func (m *TileMap) PhysicsRectsAround(pixel core.Vec2) []core.Rect {
	var rects []core.Rect
	for _, t := range m.TilesAround(pixel) {
		if !t.Kind.Physics() {
			continue
		}
		rects = append(rects, core.NewRect(
			int(t.Pos.X)*m.tileSize,
			int(t.Pos.Y)*m.tileSize,
			m.tileSize,
			m.tileSize,
		))
	}
	return rects
}

// SolidAt reports whether the cell containing pixel holds a physics tile.
func (m *TileMap) SolidAt(pixel core.Vec2) bool {
	t, ok := m.tiles[m.cellAt(pixel)]
	return ok && t.Kind.Physics()
}

// Render draws the off-grid tiles in list order, then the grid tiles visible
// through a viewport of dst's size at the given camera offset.
func (m *TileMap) Render(dst gfx.Surface, offset [2]int, images ImageSource) {
	for _, t := range m.offgrid {
		dst.Blit(
			images.TileImage(t.Kind, t.Variant),
			int(math.Floor(t.Pos.X))-offset[0],
			int(math.Floor(t.Pos.Y))-offset[1],
			false,
		)
	}

	w, h := dst.Size()
	ts := m.tileSize
	for x := core.FloorDiv(offset[0], ts); x <= core.FloorDiv(offset[0]+w, ts); x++ {
		for y := core.FloorDiv(offset[1], ts); y <= core.FloorDiv(offset[1]+h, ts); y++ {
			t, ok := m.tiles[GridKey{X: x, Y: y}]
			if !ok {
				continue
			}
			dst.Blit(images.TileImage(t.Kind, t.Variant), x*ts-offset[0], y*ts-offset[1], false)
		}
	}
}
