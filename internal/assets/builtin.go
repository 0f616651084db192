package assets

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

//go:embed defaults/sprites.yaml
var builtinSheet []byte

// Autotile variants whose tile has no neighbor on the given side.
var (
	openTop    = map[int]bool{0: true, 1: true, 2: true}
	openRight  = map[int]bool{2: true, 3: true, 4: true}
	openBottom = map[int]bool{4: true, 5: true, 6: true}
	openLeft   = map[int]bool{0: true, 6: true, 7: true}
)

const (
	tileSize     = 16
	autoVariants = 9
)

var builtin = sync.OnceValue(func() *Table {
	t := NewTable()
	s, err := ParseSheet(builtinSheet)
	if err != nil {
		panic(fmt.Sprintf("assets: builtin sheet: %v", err))
	}
	if err := s.Apply(t); err != nil {
		panic(fmt.Sprintf("assets: builtin sheet: %v", err))
	}

	grass := make([]*gfx.Image, autoVariants)
	stone := make([]*gfx.Image, autoVariants)
	for v := range autoVariants {
		grass[v] = GrassTile(v)
		stone[v] = StoneTile(v)
	}
	t.SetImages(TilesKey(tilemap.KindGrass), grass)
	t.SetImages(TilesKey(tilemap.KindStone), stone)
	t.SetImage(KeyBackground, Background(320, 240))
	if idle := t.Anim("player/idle"); idle != nil {
		t.SetImage(KeyPlayer, idle.New().Image())
	}
	return t
})

// Builtin returns the shared builtin pack. Callers that add or replace
// entries must Clone it first.
func Builtin() *Table {
	return builtin()
}

// noise is a small integer hash used to speckle tiles.
func noise(x, y, seed int) int {
	h := uint32(x*374761393 + y*668265263 + seed*2147483647)
	h = (h ^ (h >> 13)) * 1274126177
	return int((h ^ (h >> 16)) & 0xff)
}

// GrassTile draws an autotile variant of grass: dirt body, a grass cap on
// an open top, and darker rims on the other open sides.
func GrassTile(variant int) *gfx.Image {
	img := gfx.NewImage(tileSize, tileSize)
	for y := range tileSize {
		for x := range tileSize {
			c := core.ColorDirt
			if noise(x, y, variant) < 40 {
				c = core.ColorDirtDark
			}
			img.Set(x, y, c)
		}
	}
	if openLeft[variant] {
		img.FillRect(core.NewRect(0, 0, 1, tileSize), core.ColorDirtDark)
	}
	if openRight[variant] {
		img.FillRect(core.NewRect(tileSize-1, 0, 1, tileSize), core.ColorDirtDark)
	}
	if openBottom[variant] {
		img.FillRect(core.NewRect(0, tileSize-2, tileSize, 2), core.ColorDirtDark)
	}
	if openTop[variant] {
		img.FillRect(core.NewRect(0, 0, tileSize, 4), core.ColorGrass)
		for x := range tileSize {
			// ragged lower edge of the turf
			depth := 4 + noise(x, 0, variant)%3
			img.Set(x, depth-1, core.ColorGrassDark)
			if noise(x, 1, variant) < 90 {
				img.Set(x, 0, core.ColorLeaf)
			}
		}
	}
	return img
}

// StoneTile draws an autotile variant of stone with mortar lines and
// beveled open sides.
func StoneTile(variant int) *gfx.Image {
	img := gfx.NewImage(tileSize, tileSize)
	for y := range tileSize {
		for x := range tileSize {
			c := core.ColorStone
			switch {
			case y%8 == 7:
				c = core.ColorStoneDark
			case (x+(y/8)*8)%16 == 0:
				c = core.ColorStoneDark
			case noise(x, y, variant+31) < 24:
				c = core.ColorStoneDark
			}
			img.Set(x, y, c)
		}
	}
	light := core.RGB(0xa4, 0xa4, 0xae)
	if openTop[variant] {
		img.FillRect(core.NewRect(0, 0, tileSize, 1), light)
	}
	if openLeft[variant] {
		img.FillRect(core.NewRect(0, 0, 1, tileSize), light)
	}
	if openRight[variant] {
		img.FillRect(core.NewRect(tileSize-1, 0, 1, tileSize), core.ColorStoneDark)
	}
	if openBottom[variant] {
		img.FillRect(core.NewRect(0, tileSize-1, tileSize, 1), core.ColorStoneDark)
	}
	return img
}

// Background draws a vertical sky gradient of the given size.
func Background(w, h int) *gfx.Image {
	img := gfx.NewImage(w, h)
	top, bottom := core.ColorSkyTop, core.ColorSkyBottom
	for y := range h {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c := core.RGB(lerp(top.R, bottom.R, t), lerp(top.G, bottom.G, t), lerp(top.B, bottom.B, t))
		img.FillRect(core.NewRect(0, y, w, 1), c)
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
