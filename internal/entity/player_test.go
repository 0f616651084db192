package entity

import (
	"testing"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/tilemap"
)

func TestJumpCharges(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(16, 33), 8, 15)

	if !p.Jump() || p.JumpCount != 1 || p.Velocity.Y != JumpVelocity {
		t.Fatalf("first jump: count=%d vel=%v", p.JumpCount, p.Velocity.Y)
	}
	if p.Action() != ActionJump {
		t.Errorf("action = %v, expected jump", p.Action())
	}
	if !p.Jump() || p.JumpCount != 0 {
		t.Fatalf("second jump: count=%d", p.JumpCount)
	}
	p.Velocity.Y = 1
	if p.Jump() {
		t.Error("third jump should be refused")
	}
	if p.Velocity.Y != 1 {
		t.Error("refused jump changed velocity")
	}
}

func TestLandingRestoresJumps(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(16, 33.6), 8, 15)
	p.JumpCount = 0
	p.AirTime = 30
	p.Velocity = core.V(0.5, 0.5)

	p.Update(groundMap(), core.Vec2{})

	if p.JumpCount != MaxJumps || p.AirTime != 0 {
		t.Errorf("after landing: jumps=%d air=%d", p.JumpCount, p.AirTime)
	}
	if p.Velocity.X != 0 {
		t.Errorf("vel.x = %v, expected 0", p.Velocity.X)
	}
	if p.Action() != ActionIdle {
		t.Errorf("action = %v, expected idle", p.Action())
	}
}

func TestRestingOnGround(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(16, 33.6), 8, 15)
	p.Velocity.Y = 0.5
	m := groundMap()

	// Settle first, then watch a contact tick with no input.
	for range 60 {
		p.Update(m, core.Vec2{})
	}
	for range 10 {
		p.Update(m, core.Vec2{})
		if p.Collisions.Down {
			break
		}
	}

	if p.Collisions != (Collisions{Down: true}) {
		t.Errorf("collisions = %+v, expected down only", p.Collisions)
	}
	if p.Velocity != (core.Vec2{}) {
		t.Errorf("velocity = %v, expected zero", p.Velocity)
	}
	if p.Action() != ActionIdle {
		t.Errorf("action = %v, expected idle", p.Action())
	}
}

func TestAirborneLosesGroundJump(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(0, 0), 8, 15)
	empty := tilemap.New(16)

	for range CoyoteTicks {
		p.Update(empty, core.Vec2{})
	}
	if p.JumpCount != MaxJumps || p.Action() == ActionJump {
		t.Fatalf("still within coyote time: jumps=%d action=%v", p.JumpCount, p.Action())
	}

	p.Update(empty, core.Vec2{})
	if p.JumpCount != 1 {
		t.Errorf("jumps = %d, expected 1", p.JumpCount)
	}
	if p.Action() != ActionJump {
		t.Errorf("action = %v, expected jump", p.Action())
	}
}

func TestRunAction(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(16, 33.6), 8, 15)
	p.Velocity.Y = 0.5
	p.Update(groundMap(), core.V(1, 0))
	if p.Action() != ActionRun {
		t.Errorf("action = %v, expected run", p.Action())
	}
}

func TestDashTimeline(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(0, 0), 8, 15)
	empty := tilemap.New(16)

	if !p.Dash() || p.Dashing != DashTicks {
		t.Fatalf("dash start: %d", p.Dashing)
	}
	if p.Dash() {
		t.Error("dash while dashing should be refused")
	}

	p.Update(empty, core.Vec2{})
	if p.Dashing != 59 || p.Velocity.X != DashSpeed {
		t.Errorf("tick 1: dashing=%d vel.x=%v", p.Dashing, p.Velocity.X)
	}
	for range 8 {
		p.Update(empty, core.Vec2{})
	}
	if p.Dashing != 51 || !near(p.Velocity.X, 0.8) {
		t.Errorf("tick 9: dashing=%d vel.x=%v, expected 51 and 0.8", p.Dashing, p.Velocity.X)
	}
	if !p.InDashBurst() {
		t.Error("tick 9 should still be in the burst")
	}

	p.Update(empty, core.Vec2{})
	if p.Dashing != 50 || p.InDashBurst() {
		t.Errorf("tick 10: dashing=%d", p.Dashing)
	}
	// Outside a wall slide the velocity is cleared every tick.
	if p.Velocity.X != 0 {
		t.Errorf("tick 10: vel.x = %v, expected 0", p.Velocity.X)
	}

	for range 50 {
		p.Update(empty, core.Vec2{})
	}
	if p.Dashing != 0 {
		t.Errorf("dashing = %d after 60 ticks", p.Dashing)
	}
	if !p.Dash() {
		t.Error("dash should be available again")
	}
}

func TestDashDirectionFollowsFacing(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(0, 0), 8, 15)
	p.Flip = true
	p.Dash()
	if p.Dashing != -DashTicks {
		t.Errorf("dashing = %d, expected %d", p.Dashing, -DashTicks)
	}
	p.Update(tilemap.New(16), core.Vec2{})
	if p.Velocity.X != -DashSpeed {
		t.Errorf("vel.x = %v, expected %v", p.Velocity.X, -DashSpeed)
	}
}

func TestHiddenDuringDashBurst(t *testing.T) {
	p := NewPlayer(newFakeAnims(), core.V(0, 0), 8, 15)
	rec := &blitRecorder{}

	p.Render(rec, [2]int{})
	if rec.n != 1 {
		t.Fatalf("idle render blits = %d", rec.n)
	}

	p.Dash()
	p.Render(rec, [2]int{})
	if rec.n != 1 {
		t.Error("player drawn during dash burst")
	}

	p.Dashing = DashActive
	p.Render(rec, [2]int{})
	if rec.n != 2 {
		t.Error("player hidden after the burst")
	}
}

func TestWallSlide(t *testing.T) {
	m := wallMap()
	p := NewPlayer(newFakeAnims(), core.V(40, 16), 8, 15)
	p.AirTime = 10
	push := core.V(1, 0)

	p.Update(m, push)
	if !p.WallSlide || !p.Collisions.Right {
		t.Fatalf("expected to grab the wall: slide=%v collisions=%+v", p.WallSlide, p.Collisions)
	}

	for range 20 {
		p.Velocity.Y += 1 // falling fast
		p.Update(m, push)
		if !p.WallSlide {
			t.Fatal("slide ended while pushing into the wall")
		}
		if p.Velocity.Y > WallSlideVel {
			t.Fatalf("slide speed %v exceeds %v", p.Velocity.Y, WallSlideVel)
		}
	}
	if p.Action() != ActionWallSlide {
		t.Errorf("action = %v, expected wall_slide", p.Action())
	}

	jumps := p.JumpCount
	if !p.Jump() {
		t.Fatal("wall jump refused")
	}
	if p.WallSlide || p.Velocity.Y != JumpVelocity || p.JumpCount != jumps {
		t.Errorf("after wall jump: slide=%v vel.y=%v jumps=%d", p.WallSlide, p.Velocity.Y, p.JumpCount)
	}
}

func TestWallSlideEndsAwayFromWall(t *testing.T) {
	m := wallMap()
	p := NewPlayer(newFakeAnims(), core.V(40, 16), 8, 15)
	p.AirTime = 10
	p.Update(m, core.V(1, 0))
	if !p.WallSlide {
		t.Fatal("expected to grab the wall")
	}

	for range 3 {
		p.Update(m, core.V(-1, 0))
	}
	if p.WallSlide {
		t.Error("slide should end after leaving the wall")
	}
}

func TestPlayerDeterminism(t *testing.T) {
	run := func() *Player {
		m := groundMap()
		for y := 0; y < 3; y++ {
			m.Place(tilemap.K(8, y), tilemap.KindStone, 0)
		}
		p := NewPlayer(newFakeAnims(), core.V(20, 0), 8, 15)
		for i := range 400 {
			move := core.Vec2{}
			if i%90 < 60 {
				move.X = 1
			} else {
				move.X = -1
			}
			p.Update(m, move)
			if i%37 == 0 {
				p.Jump()
			}
			if i%101 == 0 {
				p.Dash()
			}
		}
		return p
	}

	a, b := run(), run()
	if a.Pos != b.Pos || a.Velocity != b.Velocity || a.Dashing != b.Dashing ||
		a.JumpCount != b.JumpCount || a.Action() != b.Action() {
		t.Errorf("runs diverged: %+v vs %+v", a.Pos, b.Pos)
	}
}
