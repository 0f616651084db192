package ninja

import "github.com/vovakirdan/ninja/internal/core"

// Camera eases the scroll toward a target each tick.
type Camera struct {
	Scroll  core.Vec2
	Damping float64
}

// Follow moves the scroll 1/Damping of the way toward centering (cx, cy) in
// a w×h viewport.
func (c *Camera) Follow(cx, cy, w, h int) {
	c.Scroll.X += (float64(cx) - float64(w)/2 - c.Scroll.X) / c.Damping
	c.Scroll.Y += (float64(cy) - float64(h)/2 - c.Scroll.Y) / c.Damping
}

// Offset returns the scroll truncated to whole pixels for rendering.
func (c *Camera) Offset() [2]int {
	return [2]int{int(c.Scroll.X), int(c.Scroll.Y)}
}
