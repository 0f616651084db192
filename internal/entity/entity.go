// Package entity implements tile-colliding bodies and the player state
// machine. Entities are advanced once per tick and never reach back into the
// game that owns them: collision geometry and animation templates are passed
// in.
package entity

import (
	"math"

	"github.com/vovakirdan/ninja/internal/anim"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

// Physics constants, tied to a 60 Hz tick.
const (
	Gravity     = 0.1
	TerminalVel = 5.0
)

// Kind identifies an entity family; it selects the animation set.
type Kind int

const (
	KindPlayer Kind = iota
)

// String returns the asset prefix for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Action is the animation state of an entity.
type Action int

const (
	ActionIdle Action = iota
	ActionRun
	ActionJump
	ActionSlide
	ActionWallSlide
)

// Actions lists every action in asset order.
var Actions = []Action{ActionIdle, ActionRun, ActionJump, ActionSlide, ActionWallSlide}

// String returns the asset key suffix for the action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionRun:
		return "run"
	case ActionJump:
		return "jump"
	case ActionSlide:
		return "slide"
	case ActionWallSlide:
		return "wall_slide"
	default:
		return "unknown"
	}
}

// Animations resolves the shared template for an entity action.
type Animations interface {
	Template(kind Kind, a Action) *anim.Template
}

// Collider supplies the solid rectangles near a pixel position.
type Collider interface {
	PhysicsRectsAround(pos core.Vec2) []core.Rect
}

// Collisions records which sides touched a solid during the last update.
type Collisions struct {
	Up, Down, Left, Right bool
}

// PhysicsEntity is an axis-aligned body that moves through the tile grid.
type PhysicsEntity struct {
	Kind       Kind
	Pos        core.Vec2
	Velocity   core.Vec2
	W, H       int
	Collisions Collisions
	Flip       bool
	AnimOffset [2]int

	anims     Animations
	action    Action
	animation *anim.Animation
}

// NewPhysicsEntity creates an idle entity at pos.
func NewPhysicsEntity(kind Kind, anims Animations, pos core.Vec2, w, h int) *PhysicsEntity {
	e := &PhysicsEntity{
		Kind:       kind,
		Pos:        pos,
		W:          w,
		H:          h,
		AnimOffset: [2]int{-3, -3},
		anims:      anims,
		action:     -1,
	}
	e.SetAction(ActionIdle)
	return e
}

// Rect returns the collision box. The position is floored to whole pixels.
func (e *PhysicsEntity) Rect() core.Rect {
	return core.RectAt(e.Pos, e.W, e.H)
}

// Center returns the center of the collision box.
func (e *PhysicsEntity) Center() (int, int) {
	return e.Rect().Center()
}

// Action returns the current action.
func (e *PhysicsEntity) Action() Action {
	return e.action
}

// Animation returns the entity's own animation instance.
func (e *PhysicsEntity) Animation() *anim.Animation {
	return e.animation
}

// SetAction switches the animation. Setting the current action again keeps
// the running animation.
func (e *PhysicsEntity) SetAction(a Action) {
	if a == e.action {
		return
	}
	e.action = a
	e.animation = nil
	if e.anims != nil {
		if tmpl := e.anims.Template(e.Kind, a); tmpl != nil {
			e.animation = tmpl.New()
		}
	}
}

// Update moves the entity by movement plus its velocity, resolving tile
// collisions one axis at a time, then applies gravity.
func (e *PhysicsEntity) Update(c Collider, movement core.Vec2) {
	e.Collisions = Collisions{}

	fm := movement.Add(e.Velocity)

	e.Pos.X += fm.X
	box := e.Rect()
	for _, r := range c.PhysicsRectsAround(e.Pos) {
		if !box.Intersects(r) {
			continue
		}
		if fm.X > 0 {
			box.SetRight(r.X)
			e.Collisions.Right = true
		}
		if fm.X < 0 {
			box.X = r.Right()
			e.Collisions.Left = true
		}
		e.Pos.X = float64(box.X)
	}

	e.Pos.Y += fm.Y
	box = e.Rect()
	for _, r := range c.PhysicsRectsAround(e.Pos) {
		if !box.Intersects(r) {
			continue
		}
		if fm.Y > 0 {
			box.SetBottom(r.Y)
			e.Collisions.Down = true
		}
		if fm.Y < 0 {
			box.Y = r.Bottom()
			e.Collisions.Up = true
		}
		e.Pos.Y = float64(box.Y)
	}

	if e.Collisions.Down || e.Collisions.Up {
		e.Velocity.Y = 0
	} else {
		e.Velocity.Y = math.Min(TerminalVel, e.Velocity.Y+Gravity)
	}

	if movement.X > 0 {
		e.Flip = false
	} else if movement.X < 0 {
		e.Flip = true
	}

	if e.animation != nil {
		e.animation.Update()
	}
}

// Render draws the current frame relative to the camera offset.
func (e *PhysicsEntity) Render(dst gfx.Surface, offset [2]int) {
	if e.animation == nil {
		return
	}
	x := int(math.Floor(e.Pos.X)) - offset[0] + e.AnimOffset[0]
	y := int(math.Floor(e.Pos.Y)) - offset[1] + e.AnimOffset[1]
	dst.Blit(e.animation.Image(), x, y, e.Flip)
}
