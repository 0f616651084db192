package tilemap

// Neighbor direction bits.
const (
	dirE uint8 = 1 << iota
	dirW
	dirS
	dirN
)

// autotileVariants maps the exact set of same-kind N/S/E/W neighbors to the
// variant that draws the matching edge or corner. Sets not listed (isolated
// tiles, vertical or horizontal runs) keep their variant.
var autotileVariants = map[uint8]int{
	dirE | dirS:               0,
	dirE | dirS | dirW:        1,
	dirW | dirS:               2,
	dirW | dirN | dirS:        3,
	dirW | dirN:               4,
	dirW | dirN | dirE:        5,
	dirE | dirN:               6,
	dirE | dirN | dirS:        7,
	dirE | dirW | dirS | dirN: 8,
}

var autotileShifts = [4]struct {
	dx, dy int
	bit    uint8
}{
	{1, 0, dirE},
	{-1, 0, dirW},
	{0, 1, dirS},
	{0, -1, dirN},
}

// neighborMask returns the direction bits of same-kind neighbors of key.
func (m *TileMap) neighborMask(key GridKey, kind Kind) uint8 {
	var mask uint8
	for _, s := range autotileShifts {
		if n, ok := m.tiles[key.Add(s.dx, s.dy)]; ok && n.Kind == kind {
			mask |= s.bit
		}
	}
	return mask
}

// Autotile rewrites the variant of every autotiling grid tile from its
// same-kind neighbor topology. Adjacency depends only on kinds, so the
// in-place rewrite gives the same result in any iteration order.
func (m *TileMap) Autotile() {
	for key, t := range m.tiles {
		if !t.Kind.Autotiles() {
			continue
		}
		if v, ok := autotileVariants[m.neighborMask(key, t.Kind)]; ok {
			t.Variant = v
			m.tiles[key] = t
		}
	}
}
