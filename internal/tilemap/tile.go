package tilemap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/ninja/internal/core"
)

var (
	// ErrUnknownKind is returned when a map names a tile kind outside the pack.
	ErrUnknownKind = errors.New("tilemap: unknown tile kind")
	// ErrBadKey is returned for a grid key that is not "x;y".
	ErrBadKey = errors.New("tilemap: malformed grid key")
)

// Kind is the closed set of tile kinds in the content pack.
type Kind int

const (
	KindDecor Kind = iota
	KindGrass
	KindLargeDecor
	KindStone
)

// Kinds lists every tile kind in asset order.
var Kinds = []Kind{KindDecor, KindGrass, KindLargeDecor, KindStone}

// String returns the kind's name as used in map files and asset keys.
func (k Kind) String() string {
	switch k {
	case KindDecor:
		return "decor"
	case KindGrass:
		return "grass"
	case KindLargeDecor:
		return "large_decor"
	case KindStone:
		return "stone"
	default:
		return "unknown"
	}
}

// ParseKind maps a file name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Physics reports whether tiles of this kind block movement.
func (k Kind) Physics() bool {
	return k == KindGrass || k == KindStone
}

// Autotiles reports whether Autotile rewrites variants of this kind.
func (k Kind) Autotiles() bool {
	return k == KindGrass || k == KindStone
}

// ID identifies a tile appearance: kind plus variant index.
type ID struct {
	Kind    Kind
	Variant int
}

// GridKey addresses one grid cell.
type GridKey struct {
	X, Y int
}

// K is a convenience constructor for GridKey.
func K(x, y int) GridKey {
	return GridKey{X: x, Y: y}
}

// String returns the "x;y" form used in map files.
func (k GridKey) String() string {
	return strconv.Itoa(k.X) + ";" + strconv.Itoa(k.Y)
}

// Add offsets the key by (dx, dy) cells.
func (k GridKey) Add(dx, dy int) GridKey {
	return GridKey{X: k.X + dx, Y: k.Y + dy}
}

// ParseGridKey parses the "x;y" file form.
func ParseGridKey(s string) (GridKey, error) {
	xs, ys, ok := strings.Cut(s, ";")
	if !ok {
		return GridKey{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return GridKey{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return GridKey{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	return GridKey{X: x, Y: y}, nil
}

// Tile is one placed tile. Grid tiles keep their grid coordinates in Pos,
// off-grid tiles keep pixel coordinates.
type Tile struct {
	Kind    Kind
	Variant int
	Pos     core.Vec2
}

// ID returns the tile's (kind, variant) pair.
func (t Tile) ID() ID {
	return ID{Kind: t.Kind, Variant: t.Variant}
}
