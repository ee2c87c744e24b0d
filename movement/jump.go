package movement

import (
	"github.com/automoto/kinetic/shared/gamemath"
)

// tryJump applies the first jump rule that fires: wall jump, then ground
// jump (with coyote time), then double jump.
func (c *Controller) tryJump() bool {
	if !c.state.jumpCached {
		return false
	}

	if c.abilities.WallJump && c.state.WallSliding {
		vel := gamemath.Vec2{
			X: -c.body.Facing * c.tun.WallJumpXVelocity,
			Y: c.tun.WallJumpYVelocity,
		}
		c.jump(vel, true, JumpWall)
		c.enterMode(ModeWallJump, c.tun.WallJumpTime)
		c.state.DoubleJumpAvailable = c.abilities.DoubleJump
		c.body.Facing = -c.body.Facing
		return true
	}

	if c.withinCoyoteTime() && !c.didJustJump() {
		v := c.body.Velocity
		if c.tun.ResetVerticalSpeedOnJumpIfMovingDown && v.Y < 0 {
			v.Y = 0
			c.body.Velocity = v
		}
		boost := gamemath.ClampSpeed(v.X*c.tun.HorizontalJumpBoostFactor, c.tun.MaxHorizontalJumpBoost)
		c.jump(gamemath.Vec2{X: boost, Y: c.tun.JumpVelocity}, false, JumpGround)
		return true
	}

	if c.abilities.DoubleJump && c.state.DoubleJumpAvailable && !c.state.Grounded && !c.state.WallSliding {
		c.state.DoubleJumpAvailable = false
		c.jump(gamemath.Vec2{X: c.body.Velocity.X, Y: c.tun.DoubleJumpVelocity}, true, JumpDouble)
		return true
	}

	return false
}

// jump consumes the cached press and either overrides the velocity or blends
// it with the retained horizontal momentum.
func (c *Controller) jump(vel gamemath.Vec2, override bool, kind JumpKind) {
	c.state.JumpCutAvailable = true
	c.state.jumpCached = false
	c.state.lastJump = c.now
	c.state.Jumping = true

	c.StopSlide()

	if override {
		c.body.Velocity = vel
	} else {
		retained := gamemath.Vec2{X: c.body.Velocity.X * c.tun.JumpMomentumRetention}
		c.body.Velocity = retained.Add(vel)
	}

	if c.Hooks.Jumped != nil {
		c.Hooks.Jumped(kind)
	}
}

// updateJumpCut shortens the jump once if the button was released while
// still rising fast.
func (c *Controller) updateJumpCut(released bool) {
	if !c.state.JumpCutAvailable {
		return
	}
	vy := c.body.Velocity.Y
	if released && vy > 0 && vy > c.tun.MinAllowedJumpCutVelocity {
		c.body.Velocity.Y = c.tun.JumpCutVelocity
		c.state.JumpCutAvailable = false
		return
	}
	if vy <= c.tun.JumpCutVelocity {
		c.state.JumpCutAvailable = false
	}
}

func (c *Controller) withinCoyoteTime() bool {
	return c.state.Grounded || c.now-c.state.lastGrounded <= c.tun.GroundedToleranceTime
}

func (c *Controller) didJustJump() bool {
	return c.now-c.state.lastJump <= c.tun.JustJumpedWindow+c.tun.GroundedToleranceTime
}
