package core

import "fmt"

// Color is a straight-alpha RGBA pixel. Alpha 0 marks a transparent pixel
// that blits skip.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Transparent is the zero color.
var Transparent = Color{}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// Opaque reports whether the pixel is drawn at all.
func (c Color) Opaque() bool {
	return c.A != 0
}

// Hex returns the "#rrggbb" form used by terminal styles.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the builtin asset pack and terminal overlays.
var (
	ColorSkyTop    = RGB(0x1b, 0x2b, 0x4a)
	ColorSkyBottom = RGB(0x5d, 0x8a, 0xa8)
	ColorCloud     = RGB(0xd8, 0xe4, 0xee)
	ColorCloudDark = RGB(0xa9, 0xbc, 0xcd)
	ColorGrass     = RGB(0x4c, 0x9a, 0x2a)
	ColorGrassDark = RGB(0x2f, 0x6b, 0x1c)
	ColorDirt      = RGB(0x6b, 0x4a, 0x2b)
	ColorDirtDark  = RGB(0x4a, 0x31, 0x1c)
	ColorStone     = RGB(0x7d, 0x7d, 0x86)
	ColorStoneDark = RGB(0x55, 0x55, 0x5e)
	ColorBark      = RGB(0x5a, 0x3a, 0x22)
	ColorLeaf      = RGB(0x8e, 0xc9, 0x3e)
	ColorLeafDark  = RGB(0x3f, 0x7d, 0x20)
	ColorFlower    = RGB(0xe8, 0x6a, 0x92)
	ColorNinja     = RGB(0x22, 0x22, 0x2a)
	ColorNinjaBand = RGB(0xc8, 0x32, 0x32)
	ColorSkin      = RGB(0xf0, 0xc8, 0x9a)
	ColorSpark     = RGB(0xf4, 0xf1, 0xc1)
	ColorWhite     = RGB(0xff, 0xff, 0xff)
	ColorBlack     = RGB(0x00, 0x00, 0x00)
)
