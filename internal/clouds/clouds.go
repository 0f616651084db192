// Package clouds renders the parallax cloud layer behind the level.
package clouds

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

// DefaultCount is the number of clouds in a layer.
const DefaultCount = 16

// Cloud is one drifting cloud.
type Cloud struct {
	Pos   core.Vec2
	Img   *gfx.Image
	Speed float64
	// Depth scales the camera offset: far clouds move less.
	Depth float64
}

// Update drifts the cloud to the right.
func (c *Cloud) Update() {
	c.Pos.X += c.Speed
}

// Render draws the cloud, wrapping it around the surface edges.
func (c *Cloud) Render(dst gfx.Surface, offset [2]int) {
	if c.Img == nil {
		return
	}
	w, h := dst.Size()
	iw, ih := c.Img.Size()
	px := c.Pos.X - float64(offset[0])*c.Depth
	py := c.Pos.Y - float64(offset[1])*c.Depth
	x := core.Mod(px, float64(w+iw)) - float64(iw)
	y := core.Mod(py, float64(h+ih)) - float64(ih)
	dst.Blit(c.Img, int(math.Floor(x)), int(math.Floor(y)), false)
}

// Layer is a set of clouds drawn back to front.
type Layer struct {
	clouds []Cloud
}

// New scatters count clouds using rng. Clouds are ordered by depth once, so
// nearer clouds draw over farther ones.
func New(images []*gfx.Image, count int, rng *rand.Rand) *Layer {
	l := &Layer{clouds: make([]Cloud, 0, max(count, 0))}
	for range count {
		pos := core.V(9999*rng.Float64(), 9999*rng.Float64())
		var img *gfx.Image
		if len(images) > 0 {
			img = images[rng.Intn(len(images))]
		}
		speed := 0.05*rng.Float64() + 0.05
		depth := 0.6*rng.Float64() + 0.2
		l.clouds = append(l.clouds, Cloud{Pos: pos, Img: img, Speed: speed, Depth: depth})
	}
	sort.SliceStable(l.clouds, func(i, j int) bool {
		return l.clouds[i].Depth < l.clouds[j].Depth
	})
	return l
}

// Len returns the number of clouds.
func (l *Layer) Len() int {
	return len(l.clouds)
}

// Clouds returns the clouds in draw order.
func (l *Layer) Clouds() []Cloud {
	out := make([]Cloud, len(l.clouds))
	copy(out, l.clouds)
	return out
}

// Update drifts every cloud.
func (l *Layer) Update() {
	for i := range l.clouds {
		l.clouds[i].Update()
	}
}

// Render draws every cloud.
func (l *Layer) Render(dst gfx.Surface, offset [2]int) {
	for i := range l.clouds {
		l.clouds[i].Render(dst, offset)
	}
}
