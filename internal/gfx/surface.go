package gfx

import "github.com/vovakirdan/ninja/internal/core"

// Surface is an abstract drawable target of fixed logical size. All world
// rendering goes through it at integer camera-relative positions.
type Surface interface {
	Size() (int, int)
	Blit(src *Image, x, y int, flipX bool)
}

// Canvas is the logical display: a fixed-size Image that platforms scale up
// to the physical output once per frame.
type Canvas struct {
	*Image
}

// NewCanvas allocates a canvas of the given logical size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Image: NewImage(w, h)}
}

// Clear fills the canvas with an opaque color.
func (c *Canvas) Clear(col core.Color) {
	c.Fill(col)
}
