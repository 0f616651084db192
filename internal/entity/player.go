package entity

import (
	"math"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

const (
	MaxJumps     = 2
	JumpVelocity = -3.0
	// CoyoteTicks is how long the player may leave the ground before
	// counting as airborne.
	CoyoteTicks   = 4
	WallSlideVel  = 0.5
	DashTicks     = 60
	DashActive    = 50 // |Dashing| above this is the burst phase
	DashSpeed     = 8.0
	DashEndFactor = 0.1
	Friction      = 0.1
)

// Player is the controllable ninja.
type Player struct {
	PhysicsEntity
	AirTime   int
	JumpCount int
	WallSlide bool
	// Dashing counts down toward zero; its sign is the dash direction.
	Dashing int
}

// NewPlayer creates a player at pos with a w×h collision box.
func NewPlayer(anims Animations, pos core.Vec2, w, h int) *Player {
	return &Player{
		PhysicsEntity: *NewPhysicsEntity(KindPlayer, anims, pos, w, h),
		JumpCount:     MaxJumps,
	}
}

// Update advances the player one tick.
func (p *Player) Update(c Collider, movement core.Vec2) {
	p.PhysicsEntity.Update(c, movement)

	p.AirTime++
	if p.Collisions.Down {
		p.AirTime = 0
		p.JumpCount = MaxJumps
		p.Velocity.X = 0
	}

	if !p.WallSlide {
		p.Velocity.X = 0
		switch {
		case p.AirTime > CoyoteTicks:
			p.SetAction(ActionJump)
			// Pushing into the wall keeps the contact alive next tick.
			if p.Collisions.Left {
				p.WallSlide = true
				p.Velocity.X = -1
			}
			if p.Collisions.Right {
				p.WallSlide = true
				p.Velocity.X = 1
			}
			if p.JumpCount == MaxJumps {
				p.JumpCount = 1
			}
		case movement.X != 0:
			p.SetAction(ActionRun)
		default:
			p.SetAction(ActionIdle)
		}
	} else {
		p.SetAction(ActionWallSlide)
		p.Velocity.Y = math.Min(WallSlideVel, p.Velocity.Y)
		if p.Collisions.Down || !(p.Collisions.Left || p.Collisions.Right) {
			p.WallSlide = false
		}
	}

	switch {
	case p.Dashing > 0:
		p.Dashing--
	case p.Dashing < 0:
		p.Dashing++
	}

	if core.Abs(p.Dashing) > DashActive {
		p.Velocity.X = float64(core.Sign(p.Dashing)) * DashSpeed
		if core.Abs(p.Dashing) == DashActive+1 {
			p.Velocity.X *= DashEndFactor
		}
		return
	}

	if p.Velocity.X > 0 {
		p.Velocity.X = math.Max(p.Velocity.X-Friction, 0)
	} else {
		p.Velocity.X = math.Min(p.Velocity.X+Friction, 0)
	}
}

// Jump leaves a wall slide or spends a jump charge. It reports whether the
// jump happened.
func (p *Player) Jump() bool {
	if p.WallSlide {
		p.Velocity.Y = JumpVelocity
		p.SetAction(ActionJump)
		p.WallSlide = false
		return true
	}
	if p.JumpCount > 0 {
		p.JumpCount--
		p.Velocity.Y = JumpVelocity
		p.SetAction(ActionJump)
		return true
	}
	return false
}

// Dash starts a dash in the facing direction unless one is running.
func (p *Player) Dash() bool {
	if p.Dashing != 0 {
		return false
	}
	if p.Flip {
		p.Dashing = -DashTicks
	} else {
		p.Dashing = DashTicks
	}
	return true
}

// InDashBurst reports whether the player is in the burst phase of a dash.
func (p *Player) InDashBurst() bool {
	return core.Abs(p.Dashing) > DashActive
}

// Render draws the player; it is hidden during the dash burst.
func (p *Player) Render(dst gfx.Surface, offset [2]int) {
	if p.InDashBurst() {
		return
	}
	p.PhysicsEntity.Render(dst, offset)
}
