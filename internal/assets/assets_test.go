package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ninja/internal/anim"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/entity"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

func TestBuiltinTiles(t *testing.T) {
	b := Builtin()
	want := map[tilemap.Kind]int{
		tilemap.KindDecor:      4,
		tilemap.KindGrass:      9,
		tilemap.KindLargeDecor: 3,
		tilemap.KindStone:      9,
	}
	for kind, n := range want {
		if got := len(b.Images(TilesKey(kind))); got != n {
			t.Errorf("%s: %d variants, expected %d", kind, got, n)
		}
		if b.TileImage(kind, n) != nil {
			t.Errorf("%s: variant %d should be missing", kind, n)
		}
	}
	tree := b.TileImage(tilemap.KindLargeDecor, 2)
	if w, h := tree.Size(); w != 32 || h != 48 {
		t.Errorf("tree is %dx%d, expected 32x48", w, h)
	}
}

func TestBuiltinAnimations(t *testing.T) {
	b := Builtin()
	tests := []struct {
		key    string
		imgDur int
		loop   bool
	}{
		{"player/idle", 6, true},
		{"player/run", 4, true},
		{"player/jump", 5, true},
		{"player/slide", 5, true},
		{"player/wall_slide", 5, true},
		{KeyLeaf, 20, false},
		{KeyParticle, 6, false},
	}
	for _, tt := range tests {
		tmpl := b.Anim(tt.key)
		if tmpl == nil {
			t.Errorf("%s: missing", tt.key)
			continue
		}
		if tmpl.ImgDur() != tt.imgDur || tmpl.Loop() != tt.loop {
			t.Errorf("%s: img_dur=%d loop=%v, expected %d %v",
				tt.key, tmpl.ImgDur(), tmpl.Loop(), tt.imgDur, tt.loop)
		}
	}

	for _, a := range entity.Actions {
		if b.Template(entity.KindPlayer, a) == nil {
			t.Errorf("no template for player %s", a)
		}
	}
}

func TestBuiltinImages(t *testing.T) {
	b := Builtin()
	if len(b.Images(KeyClouds)) == 0 {
		t.Error("no cloud images")
	}
	bg := b.Image(KeyBackground)
	if bg == nil {
		t.Fatal("no background")
	}
	if bg.At(0, 0) != core.ColorSkyTop || bg.At(0, 239) != core.ColorSkyBottom {
		t.Errorf("gradient ends = %v, %v", bg.At(0, 0), bg.At(0, 239))
	}
	if b.Image(KeyPlayer) == nil {
		t.Error("no player image")
	}
}

func TestGrassTileCap(t *testing.T) {
	top := GrassTile(1)
	center := GrassTile(8)
	if top.At(8, 1) != core.ColorGrass {
		t.Errorf("top edge tile lacks grass: %v", top.At(8, 1))
	}
	if center.At(8, 1) == core.ColorGrass {
		t.Error("center tile has a grass cap")
	}
}

func TestCloneIsolation(t *testing.T) {
	c := Builtin().Clone()
	c.SetImage(KeyBackground, Background(10, 10))
	if w, _ := Builtin().Image(KeyBackground).Size(); w != 320 {
		t.Error("clone write leaked into the builtin pack")
	}
}

func TestSheetOverrides(t *testing.T) {
	doc := `
palette:
  "x": "#ff0000"
  "h": "#00ff0080"
anims:
  player/idle:
    img_dur: 3
    frames:
      - ["x.", ".x"]
      - ["xx", "xx"]
images:
  tiles/decor:
    - ["hx"]
`
	s, err := ParseSheet([]byte(doc))
	if err != nil {
		t.Fatalf("ParseSheet: %v", err)
	}
	tbl := Builtin().Clone()
	if err := s.Apply(tbl); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	idle := tbl.Template(entity.KindPlayer, entity.ActionIdle)
	if idle.Frames() != 2 || idle.ImgDur() != 3 || !idle.Loop() {
		t.Errorf("idle = %d frames, dur %d, loop %v", idle.Frames(), idle.ImgDur(), idle.Loop())
	}
	img := idle.New().Image()
	if img.At(0, 0) != core.RGB(0xff, 0, 0) || img.At(1, 0).Opaque() {
		t.Errorf("decoded pixels = %v %v", img.At(0, 0), img.At(1, 0))
	}
	decor := tbl.TileImage(tilemap.KindDecor, 0)
	if decor.At(0, 0) != (core.Color{G: 0xff, A: 0x80}) {
		t.Errorf("alpha color = %v", decor.At(0, 0))
	}
	if tbl.TileImage(tilemap.KindDecor, 1) != nil {
		t.Error("sheet list should replace the whole variant list")
	}
	if tbl.Anim("player/run") == nil {
		t.Error("untouched keys should survive")
	}
}

func TestSheetErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"long palette key", "palette: {ab: \"#000000\"}\n", ErrBadSheet},
		{"bad color", "palette: {a: \"#zz0000\"}\n", ErrBadSheet},
		{"ragged rows", "images: {x: [[\"..\", \".\"]]}\n", ErrBadSheet},
		{"unknown char", "images: {x: [[\"q\"]]}\n", ErrBadSheet},
		{"no frames", "anims: {x: {frames: []}}\n", anim.ErrNoFrames},
		{"bad duration", "anims: {x: {img_dur: -1, frames: [[\".\"]]}}\n", anim.ErrBadDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSheet([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ParseSheet: %v", err)
			}
			tbl := NewTable()
			err = s.Apply(tbl)
			if !errors.Is(err, tt.want) {
				t.Errorf("Apply error = %v, expected %v", err, tt.want)
			}
			if len(tbl.Keys()) != 0 {
				t.Error("failed sheet stored entries")
			}
		})
	}
}

func TestLoadSheetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(path, []byte("images: {clouds: [[\".\"]]}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSheetFile(path)
	if err != nil {
		t.Fatalf("LoadSheetFile: %v", err)
	}
	if len(s.Images["clouds"]) != 1 {
		t.Errorf("images = %v", s.Images)
	}
	if _, err := LoadSheetFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want core.Color
		ok   bool
	}{
		{"#102030", core.RGB(0x10, 0x20, 0x30), true},
		{"a0b0c0ff", core.RGB(0xa0, 0xb0, 0xc0), true},
		{"#12345", core.Color{}, false},
		{"#gg0000", core.Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseHex(%q) = %v, %v", tt.in, got, err)
		}
	}
}
