package formats

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

// LegendEntry maps one layout character to a tile.
type LegendEntry struct {
	Type    string `yaml:"type"`
	Variant int    `yaml:"variant"`
}

// YAMLLayout is a hand-authored map: one string per grid row.
type YAMLLayout struct {
	Name     string                 `yaml:"name"`
	TileSize int                    `yaml:"tile_size"`
	Origin   [2]int                 `yaml:"origin,flow"`
	Autotile bool                   `yaml:"autotile"`
	Legend   map[string]LegendEntry `yaml:"legend"`
	OffGrid  []tilemap.TileRecord   `yaml:"offgrid"`
	Rows     []string               `yaml:"rows"`
}

// ParseLayout builds a map from a YAML layout document.
func ParseLayout(data []byte) (*tilemap.TileMap, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.Build()
}

// Build converts the layout into a map.
func (yl YAMLLayout) Build() (*tilemap.TileMap, error) {
	tileSize := yl.TileSize
	if tileSize <= 0 {
		tileSize = 16 // Default tile size
	}

	legend := make(map[rune]tilemap.ID, len(yl.Legend))
	for ch, e := range yl.Legend {
		if utf8.RuneCountInString(ch) != 1 {
			return nil, fmt.Errorf("legend key %q must be a single character", ch)
		}
		kind, err := tilemap.ParseKind(e.Type)
		if err != nil {
			return nil, fmt.Errorf("legend %q: %w", ch, err)
		}
		r, _ := utf8.DecodeRuneInString(ch)
		legend[r] = tilemap.ID{Kind: kind, Variant: e.Variant}
	}

	m := tilemap.New(tileSize)
	for y, row := range yl.Rows {
		x := 0
		for _, ch := range row {
			if ch != ' ' && ch != '.' {
				id, ok := legend[ch]
				if !ok {
					return nil, fmt.Errorf("row %d col %d: %q not in legend", y, x, ch)
				}
				m.Place(tilemap.K(yl.Origin[0]+x, yl.Origin[1]+y), id.Kind, id.Variant)
			}
			x++
		}
	}

	for i, tr := range yl.OffGrid {
		kind, err := tilemap.ParseKind(tr.Type)
		if err != nil {
			return nil, fmt.Errorf("offgrid %d: %w", i, err)
		}
		m.PlaceOffGrid(kind, tr.Variant, core.V(tr.Pos[0], tr.Pos[1]))
	}

	if yl.Autotile {
		m.Autotile()
	}
	return m, nil
}
