// Package anim implements frame-counted sprite animations.
//
// A Template is the shared, immutable part (frames, per-frame duration, loop
// flag). An Animation is a per-entity instance that owns the mutable frame
// counter. Many instances may run off one template at once.
package anim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ninja/internal/gfx"
)

var (
	// ErrNoFrames is returned for a template without images.
	ErrNoFrames = errors.New("anim: template has no frames")
	// ErrBadDuration is returned for a per-frame duration below one tick.
	ErrBadDuration = errors.New("anim: frame duration must be at least 1 tick")
)

// Template is a shared image sequence. It is never mutated after creation.
type Template struct {
	images []*gfx.Image
	imgDur int
	loop   bool
}

// NewTemplate validates and builds a template. imgDur is the number of ticks
// each image stays on screen.
func NewTemplate(images []*gfx.Image, imgDur int, loop bool) (*Template, error) {
	if len(images) == 0 {
		return nil, ErrNoFrames
	}
	if imgDur < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDuration, imgDur)
	}
	for i, img := range images {
		if img == nil {
			return nil, fmt.Errorf("anim: frame %d is nil", i)
		}
	}
	frames := make([]*gfx.Image, len(images))
	copy(frames, images)
	return &Template{images: frames, imgDur: imgDur, loop: loop}, nil
}

// MustTemplate is NewTemplate for builtin content; it panics on error.
func MustTemplate(images []*gfx.Image, imgDur int, loop bool) *Template {
	t, err := NewTemplate(images, imgDur, loop)
	if err != nil {
		panic(err)
	}
	return t
}

// Frames returns the number of images.
func (t *Template) Frames() int {
	return len(t.images)
}

// ImgDur returns the ticks per image.
func (t *Template) ImgDur() int {
	return t.imgDur
}

// Loop reports whether instances wrap around.
func (t *Template) Loop() bool {
	return t.loop
}

// Ticks returns the total length of one cycle in ticks.
func (t *Template) Ticks() int {
	return t.imgDur * len(t.images)
}

// New returns a fresh instance at frame 0.
func (t *Template) New() *Animation {
	return &Animation{tmpl: t}
}

// Animation is one entity's playback state over a shared Template.
type Animation struct {
	tmpl  *Template
	frame int
	done  bool
}

// Clone returns a new instance of the same template, rewound to frame 0.
func (a *Animation) Clone() *Animation {
	return a.tmpl.New()
}

// Template returns the shared template.
func (a *Animation) Template() *Template {
	return a.tmpl
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	total := a.tmpl.Ticks()
	if a.tmpl.loop {
		a.frame = (a.frame + 1) % total
		return
	}
	a.frame = min(a.frame+1, total-1)
	if a.frame >= total-1 {
		a.done = true
	}
}

// Image returns the image for the current frame.
func (a *Animation) Image() *gfx.Image {
	return a.tmpl.images[a.frame/a.tmpl.imgDur]
}

// Frame returns the tick counter.
func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to a tick, clamped into the valid range.
func (a *Animation) SetFrame(f int) {
	a.frame = max(0, min(f, a.tmpl.Ticks()-1))
}

// Done reports whether a non-looping animation reached its last tick.
func (a *Animation) Done() bool {
	return a.done
}
