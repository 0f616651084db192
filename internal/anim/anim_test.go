package anim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ninja/internal/gfx"
)

func frames(n int) []*gfx.Image {
	out := make([]*gfx.Image, n)
	for i := range out {
		out[i] = gfx.NewImage(1, 1)
	}
	return out
}

func TestNewTemplateValidation(t *testing.T) {
	if _, err := NewTemplate(nil, 5, true); !errors.Is(err, ErrNoFrames) {
		t.Errorf("empty frames: got %v, expected ErrNoFrames", err)
	}
	if _, err := NewTemplate(frames(2), 0, true); !errors.Is(err, ErrBadDuration) {
		t.Errorf("zero duration: got %v, expected ErrBadDuration", err)
	}
	if _, err := NewTemplate([]*gfx.Image{nil}, 1, true); err == nil {
		t.Error("nil frame should be rejected")
	}
}

func TestLoopingStaysInRange(t *testing.T) {
	tmpl := MustTemplate(frames(3), 4, true)
	a := tmpl.New()
	for i := 0; i < 100; i++ {
		a.Update()
		if a.Frame() < 0 || a.Frame() >= 12 {
			t.Fatalf("tick %d: frame %d out of [0,12)", i, a.Frame())
		}
		if a.Done() {
			t.Fatal("looping animation must never be done")
		}
	}
	// 100 mod 12 = 4
	if a.Frame() != 4 {
		t.Errorf("frame after 100 ticks = %d, expected 4", a.Frame())
	}
}

func TestNonLoopingStopsAtLastTick(t *testing.T) {
	tmpl := MustTemplate(frames(2), 3, false)
	a := tmpl.New()

	for i := 0; i < 4; i++ {
		a.Update()
	}
	if a.Done() {
		t.Fatalf("done too early at frame %d", a.Frame())
	}
	a.Update()
	if !a.Done() || a.Frame() != 5 {
		t.Errorf("after 5 ticks: frame=%d done=%v, expected 5 true", a.Frame(), a.Done())
	}
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 5 {
		t.Errorf("frame must not exceed 5, got %d", a.Frame())
	}
}

func TestImageSelection(t *testing.T) {
	imgs := frames(3)
	a := MustTemplate(imgs, 2, true).New()

	expected := []int{0, 0, 1, 1, 2, 2, 0}
	for tick, idx := range expected {
		if a.Image() != imgs[idx] {
			t.Errorf("tick %d: wrong image, expected index %d", tick, idx)
		}
		a.Update()
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	tmpl := MustTemplate(frames(4), 5, true)
	a := tmpl.New()
	b := tmpl.New()

	for i := 0; i < 7; i++ {
		a.Update()
	}
	if b.Frame() != 0 {
		t.Errorf("sibling instance advanced to %d", b.Frame())
	}

	c := a.Clone()
	if c.Frame() != 0 || c.Done() {
		t.Error("clone must start rewound")
	}
	if c.Template() != tmpl {
		t.Error("clone must share the template")
	}
}

func TestSetFrameClamps(t *testing.T) {
	a := MustTemplate(frames(2), 10, false).New()
	a.SetFrame(500)
	if a.Frame() != 19 {
		t.Errorf("SetFrame(500) = %d, expected 19", a.Frame())
	}
	a.SetFrame(-3)
	if a.Frame() != 0 {
		t.Errorf("SetFrame(-3) = %d, expected 0", a.Frame())
	}
}
