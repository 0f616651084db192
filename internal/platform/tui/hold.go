package tui

import "github.com/vovakirdan/ninja/internal/core"

// HoldTracker emulates key-up events, which terminals never send. A press
// holds its direction for a number of ticks; key repeat refreshes the hold and
// the opposite direction releases it at once.
type HoldTracker struct {
	ticks int
	left  int
	right int
}

// NewHoldTracker creates a tracker holding each press for ticks ticks.
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks < 1 {
		ticks = 1
	}
	return &HoldTracker{ticks: ticks}
}

// Press starts or refreshes a hold.
func (h *HoldTracker) Press(d Direction) {
	switch d {
	case DirLeft:
		h.left = h.ticks
		h.right = 0
	case DirRight:
		h.right = h.ticks
		h.left = 0
	}
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left, h.right = 0, 0
}

// Apply writes the held flags into the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	frame.Left = h.left > 0
	frame.Right = h.right > 0
}

// Tick counts one simulation tick off every active hold.
func (h *HoldTracker) Tick() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
}
