// Package gfx provides the pixel types shared by the simulation and the
// platforms: immutable sprite images and the abstract render surface.
package gfx

import "github.com/vovakirdan/ninja/internal/core"

// Image is a small RGBA pixel buffer. Sprites are built once and shared
// read-only between every entity that draws them.
type Image struct {
	w, h int
	pix  []core.Color
}

// NewImage allocates a fully transparent image.
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{w: w, h: h, pix: make([]core.Color, w*h)}
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.w
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.h
}

// Size returns (width, height).
func (img *Image) Size() (int, int) {
	return img.w, img.h
}

// At returns the pixel at (x, y), transparent when out of bounds.
func (img *Image) At(x, y int) core.Color {
	if x < 0 || y < 0 || x >= img.w || y >= img.h {
		return core.Transparent
	}
	return img.pix[y*img.w+x]
}

// Set writes a pixel. Out-of-bounds writes are ignored.
func (img *Image) Set(x, y int, c core.Color) {
	if x < 0 || y < 0 || x >= img.w || y >= img.h {
		return
	}
	img.pix[y*img.w+x] = c
}

// Fill paints every pixel with c.
func (img *Image) Fill(c core.Color) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// FillRect paints the intersection of r and the image with c.
func (img *Image) FillRect(r core.Rect, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			img.Set(x, y, c)
		}
	}
}

// Blit copies src onto img with its top-left corner at (x, y). Transparent
// source pixels are skipped and flipX mirrors the source horizontally.
func (img *Image) Blit(src *Image, x, y int, flipX bool) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= img.h {
			continue
		}
		for sx := 0; sx < src.w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= img.w {
				continue
			}
			col := sx
			if flipX {
				col = src.w - 1 - sx
			}
			c := src.pix[sy*src.w+col]
			if !c.Opaque() {
				continue
			}
			img.pix[dy*img.w+dx] = c
		}
	}
}

// RGBA appends the image as 8-bit RGBA bytes, row-major, to dst.
func (img *Image) RGBA(dst []byte) []byte {
	for _, c := range img.pix {
		dst = append(dst, c.R, c.G, c.B, c.A)
	}
	return dst
}
