// Package assets holds the images and animation templates a game draws
// with. Tables are filled once before the loop starts and read-only after.
package assets

import (
	"sort"

	"github.com/vovakirdan/ninja/internal/anim"
	"github.com/vovakirdan/ninja/internal/entity"
	"github.com/vovakirdan/ninja/internal/gfx"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

// Asset keys outside the per-entity and per-tile families.
const (
	KeyBackground = "background"
	KeyClouds     = "clouds"
	KeyPlayer     = "player"
	KeyLeaf       = "particles/leaf"
	KeyParticle   = "particles/particle"
)

// TilesKey returns the image-list key holding a tile kind's variants.
func TilesKey(kind tilemap.Kind) string {
	return "tiles/" + kind.String()
}

// AnimKey returns the template key for an entity action, e.g. "player/run".
func AnimKey(kind entity.Kind, a entity.Action) string {
	return kind.String() + "/" + a.String()
}

// Table maps string keys to image lists and animation templates.
type Table struct {
	images map[string][]*gfx.Image
	anims  map[string]*anim.Template
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		images: make(map[string][]*gfx.Image),
		anims:  make(map[string]*anim.Template),
	}
}

// Clone returns a shallow copy; images and templates are shared.
func (t *Table) Clone() *Table {
	c := NewTable()
	for k, v := range t.images {
		c.images[k] = v
	}
	for k, v := range t.anims {
		c.anims[k] = v
	}
	return c
}

// SetImages stores an image list under key.
func (t *Table) SetImages(key string, imgs []*gfx.Image) {
	t.images[key] = imgs
}

// SetImage stores a single image under key.
func (t *Table) SetImage(key string, img *gfx.Image) {
	t.images[key] = []*gfx.Image{img}
}

// SetAnim stores a template under key.
func (t *Table) SetAnim(key string, tmpl *anim.Template) {
	t.anims[key] = tmpl
}

// Images returns the image list stored under key.
func (t *Table) Images(key string) []*gfx.Image {
	return t.images[key]
}

// Image returns the first image stored under key, or nil.
func (t *Table) Image(key string) *gfx.Image {
	imgs := t.images[key]
	if len(imgs) == 0 {
		return nil
	}
	return imgs[0]
}

// Anim returns the template stored under key, or nil.
func (t *Table) Anim(key string) *anim.Template {
	return t.anims[key]
}

// TileImage implements tilemap.ImageSource.
func (t *Table) TileImage(kind tilemap.Kind, variant int) *gfx.Image {
	imgs := t.images[TilesKey(kind)]
	if variant < 0 || variant >= len(imgs) {
		return nil
	}
	return imgs[variant]
}

// Template implements entity.Animations.
func (t *Table) Template(kind entity.Kind, a entity.Action) *anim.Template {
	return t.anims[AnimKey(kind, a)]
}

// Keys lists every image and animation key, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.images)+len(t.anims))
	for k := range t.images {
		keys = append(keys, k)
	}
	for k := range t.anims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
