package movement

import (
	"math"

	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
)

func (c *Controller) Velocity() gamemath.Vec2 {
	return c.body.Velocity
}

// SetVelocity overrides the body velocity. Timed modes keep running.
func (c *Controller) SetVelocity(v gamemath.Vec2) {
	c.body.Velocity = v
}

func (c *Controller) Body() Body {
	return c.body
}

func (c *Controller) State() MotionState {
	return c.state
}

func (c *Controller) Signals() Signals {
	return Signals{
		Grounded:        c.state.Grounded,
		Jumping:         c.state.Jumping,
		WallSliding:     c.state.WallSliding,
		Dashing:         c.state.Mode == ModeDash,
		Sliding:         c.state.Mode == ModeSlide,
		Sprinting:       c.state.Sprinting,
		HorizontalSpeed: math.Abs(c.body.Velocity.X),
		VerticalSpeed:   c.body.Velocity.Y,
		Facing:          c.body.Facing,
		Mode:            c.state.Mode,
	}
}

// Reset returns the body to rest: no velocity, no timers, standing profile,
// gravity restored and facing right. Ability gates are kept.
func (c *Controller) Reset() {
	c.exitMode()
	c.body.Velocity = gamemath.Vec2{}
	c.body.GravityScale = 1
	c.body.Facing = config.DirectionRight
	c.setProfile(c.tun.StandingCollider)
	c.state = freshState(c.abilities)
	c.input = Snapshot{}
}

func (c *Controller) Abilities() config.AbilityConfig {
	return c.abilities
}

// SetAbilities applies every gate through its setter so revocations cancel
// in-progress behavior.
func (c *Controller) SetAbilities(a config.AbilityConfig) {
	c.UnlockDoubleJump(a.DoubleJump)
	c.UnlockWallJump(a.WallJump)
	c.UnlockSprint(a.Sprint)
	c.UnlockDash(a.Dash)
	c.UnlockSlide(a.Slide)
}

func (c *Controller) UnlockDoubleJump(on bool) {
	c.abilities.DoubleJump = on
	if !on {
		c.state.DoubleJumpAvailable = false
	} else if c.state.Grounded {
		c.state.DoubleJumpAvailable = true
	}
}

func (c *Controller) UnlockWallJump(on bool) {
	c.abilities.WallJump = on
	if on {
		return
	}
	c.state.WallSliding = false
	if c.state.Mode == ModeWallJump {
		c.exitMode()
	}
}

func (c *Controller) UnlockSprint(on bool) {
	c.abilities.Sprint = on
	if !on {
		c.state.Sprinting = false
		c.input.Sprint = false
	}
}

func (c *Controller) UnlockDash(on bool) {
	c.abilities.Dash = on
	if !on && c.state.Mode == ModeDash {
		c.exitMode()
	}
}

func (c *Controller) UnlockSlide(on bool) {
	c.abilities.Slide = on
	if !on {
		c.StopSlide()
	}
}

func (c *Controller) Tunables() *config.MovementConfig {
	return c.tun
}

// SetTunables swaps the tunables between steps. The current collision profile
// is re-read from the new values.
func (c *Controller) SetTunables(tun *config.MovementConfig) {
	c.tun = tun
	if c.state.Mode == ModeSlide || c.state.standPending {
		c.setProfile(tun.SlidingCollider)
	} else {
		c.setProfile(tun.StandingCollider)
	}
}
