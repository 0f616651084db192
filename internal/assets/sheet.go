package assets

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ninja/internal/anim"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

// ErrBadSheet is returned for malformed sprite sheets.
var ErrBadSheet = errors.New("assets: bad sprite sheet")

// transparentKey is the palette character that is never drawn.
const transparentKey = '.'

// Sheet is a text sprite sheet. Each sprite is a list of equal-width rows;
// every character indexes the palette.
type Sheet struct {
	Palette map[string]string     `yaml:"palette"`
	Anims   map[string]SheetAnim  `yaml:"anims"`
	Images  map[string][][]string `yaml:"images"`
}

// SheetAnim describes one animation template. ImgDur defaults to 5 and Loop
// to true.
type SheetAnim struct {
	ImgDur int        `yaml:"img_dur"`
	Loop   *bool      `yaml:"loop"`
	Frames [][]string `yaml:"frames"`
}

// ParseSheet decodes a YAML sprite sheet.
func ParseSheet(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &s, nil
}

// LoadSheetFile reads and decodes a sprite sheet file.
func LoadSheetFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return s, nil
}

// Apply decodes every sprite and stores it in t, replacing existing keys.
// Nothing is stored when any sprite fails.
func (s *Sheet) Apply(t *Table) error {
	pal, err := s.palette()
	if err != nil {
		return err
	}

	images := make(map[string][]*gfx.Image, len(s.Images))
	for key, sprites := range s.Images {
		imgs := make([]*gfx.Image, 0, len(sprites))
		for i, rows := range sprites {
			img, err := decodeSprite(rows, pal)
			if err != nil {
				return fmt.Errorf("%w: image %s[%d]: %v", ErrBadSheet, key, i, err)
			}
			imgs = append(imgs, img)
		}
		images[key] = imgs
	}

	anims := make(map[string]*anim.Template, len(s.Anims))
	for key, a := range s.Anims {
		frames := make([]*gfx.Image, 0, len(a.Frames))
		for i, rows := range a.Frames {
			img, err := decodeSprite(rows, pal)
			if err != nil {
				return fmt.Errorf("%w: anim %s[%d]: %v", ErrBadSheet, key, i, err)
			}
			frames = append(frames, img)
		}
		dur := a.ImgDur
		if dur == 0 {
			dur = 5
		}
		loop := true
		if a.Loop != nil {
			loop = *a.Loop
		}
		tmpl, err := anim.NewTemplate(frames, dur, loop)
		if err != nil {
			return fmt.Errorf("anim %s: %w", key, err)
		}
		anims[key] = tmpl
	}

	for k, v := range images {
		t.SetImages(k, v)
	}
	for k, v := range anims {
		t.SetAnim(k, v)
	}
	return nil
}

func (s *Sheet) palette() (map[rune]core.Color, error) {
	pal := map[rune]core.Color{transparentKey: core.Transparent}
	for k, v := range s.Palette {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%w: palette key %q must be one character", ErrBadSheet, k)
		}
		c, err := ParseHex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: palette %q: %v", ErrBadSheet, k, err)
		}
		r, _ := utf8.DecodeRuneInString(k)
		pal[r] = c
	}
	return pal, nil
}

func decodeSprite(rows []string, pal map[rune]core.Color) (*gfx.Image, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows")
	}
	w := utf8.RuneCountInString(rows[0])
	img := gfx.NewImage(w, len(rows))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, n, w)
		}
		x := 0
		for _, ch := range row {
			c, ok := pal[ch]
			if !ok {
				return nil, fmt.Errorf("row %d: %q not in palette", y, ch)
			}
			img.Set(x, y, c)
			x++
		}
	}
	return img, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (core.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return core.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return core.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		return core.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return core.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
