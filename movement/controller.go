// Package movement is the character controller: it samples input, resolves
// jump, wall, dash and slide transitions against environment probes, and
// integrates forces into the body's velocity at a fixed rate.
//
// The controller never moves the body itself. Callers run Update once per
// rendered frame, FixedUpdate once per fixed step (see Stepper), and then
// move the collider by Velocity()*step.
package movement

import (
	"math"

	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
)

// Hooks are optional callbacks for collaborators that mirror controller state.
type Hooks struct {
	// ProfileChanged fires when the collision profile switches between
	// standing and sliding.
	ProfileChanged func(config.ColliderProfile)
	// Jumped fires after any jump has been applied to the velocity.
	Jumped func(JumpKind)
}

type Controller struct {
	tun       *config.MovementConfig
	abilities config.AbilityConfig
	probe     Probe
	source    InputSource

	body  Body
	state MotionState
	input Snapshot // this frame's input, already gated by abilities
	now   float64  // seconds of variable-rate time since construction

	Hooks Hooks
}

// New builds a controller at rest, facing right, in the standing profile.
// probe and source may be nil.
func New(tun *config.MovementConfig, abilities config.AbilityConfig, probe Probe, source InputSource) *Controller {
	c := &Controller{
		tun:       tun,
		abilities: abilities,
		probe:     probe,
		source:    source,
	}
	c.body = Body{
		Facing:       config.DirectionRight,
		GravityScale: 1,
		Profile:      tun.StandingCollider,
	}
	c.state = freshState(abilities)
	return c
}

func freshState(abilities config.AbilityConfig) MotionState {
	return MotionState{
		DoubleJumpAvailable: abilities.DoubleJump,
		lastGrounded:        math.Inf(-1),
		lastJump:            math.Inf(-1),
		jumpCachedAt:        math.Inf(-1),
	}
}

// Update runs the variable-rate phase: input sampling, environment probing
// and real-time timers.
func (c *Controller) Update(dt float64) {
	c.now += dt
	c.sampleInput()
	c.checkGrounded()
	if c.abilities.WallJump {
		c.checkWallSliding(dt)
	} else {
		c.state.WallSliding = false
		if c.state.Mode == ModeWallJump {
			c.exitMode()
		}
	}
	c.updateCooldowns(dt)
	c.handleAbilityInput()
}

// FixedUpdate runs one fixed step of resolution and integration.
func (c *Controller) FixedUpdate() {
	dt := c.tun.FixedTimeStep
	if c.state.standPending {
		c.standUp()
	}
	c.advanceMode(dt)

	released := c.state.jumpReleased
	c.state.jumpReleased = false

	if c.tryJump() {
		return
	}
	c.updateJumpCut(released)

	if c.state.Mode == ModeSlide {
		c.slideMove(dt)
		return
	}
	if c.state.Mode == ModeFree {
		c.move(dt)
	} else {
		// dash and wall-jump lock own the horizontal motion; gravity still
		// acts, scaled to zero while dashing
		c.body.Velocity.Y += c.gravity().Y * dt
	}

	if c.state.WallSliding && c.body.Velocity.Y < -c.tun.WallSlidingSpeed {
		c.body.Velocity.Y = -c.tun.WallSlidingSpeed
	}

	if c.state.Mode != ModeWallJump && math.Abs(c.input.Move.X) > c.tun.InputDeadzone {
		c.body.Facing = gamemath.Sign(c.input.Move.X)
	}

	c.cleanupVelocity()
}

func (c *Controller) sampleInput() {
	var snap Snapshot
	if c.source != nil {
		if s, ok := c.source.Snapshot(); ok {
			snap = s
		}
	}

	c.input = Snapshot{
		Move:        snap.Move,
		Sprint:      c.abilities.Sprint && snap.Sprint,
		JumpPressed: snap.JumpPressed,
		// edges for gated abilities are dropped here so nothing downstream
		// can trigger a locked ability
		DashPressed:  c.abilities.Dash && snap.DashPressed,
		SlidePressed: c.abilities.Slide && snap.SlidePressed,
		JumpReleased: snap.JumpReleased,
	}
	c.state.Sprinting = c.input.Sprint && c.input.Move.X != 0

	if snap.JumpPressed {
		c.state.jumpCached = true
		c.state.jumpCachedAt = c.now
	}
	if c.state.jumpCached && c.now-c.state.jumpCachedAt >= c.tun.JumpCacheTime {
		c.state.jumpCached = false
	}
	if snap.JumpReleased {
		c.state.jumpReleased = true
	}
}

func (c *Controller) checkGrounded() {
	c.state.Grounded = c.probe != nil && c.probe.Grounded()
	if !c.state.Grounded {
		return
	}
	c.state.lastGrounded = c.now
	c.state.Jumping = false
	c.state.DoubleJumpAvailable = c.abilities.DoubleJump
}

func (c *Controller) checkWallSliding(dt float64) {
	touching := c.probe != nil && c.probe.WallAhead(c.body.Facing, c.tun.WallCheckDistance)

	was := c.state.WallSliding
	c.state.WallSliding = touching && !c.state.Grounded && c.input.Move.X != 0
	if !was && c.state.WallSliding {
		c.state.DoubleJumpAvailable = c.abilities.DoubleJump
	}

	if c.state.Mode == ModeWallJump {
		c.state.ModeRemaining -= dt
		if c.state.ModeRemaining <= 0 {
			c.exitMode()
		}
	}
}

func (c *Controller) updateCooldowns(dt float64) {
	if c.state.DashCooldown > 0 {
		c.state.DashCooldown = math.Max(0, c.state.DashCooldown-dt)
	}
	if c.state.SlideCooldown > 0 {
		c.state.SlideCooldown = math.Max(0, c.state.SlideCooldown-dt)
	}
}

func (c *Controller) handleAbilityInput() {
	if c.state.Mode == ModeSlide {
		x := c.input.Move.X
		if gamemath.Sign(x) == -c.state.slideDirection && math.Abs(x) > c.tun.SlideCancelThreshold {
			c.StopSlide()
		}
	}

	if c.input.DashPressed && c.canDash() {
		c.startDash()
	}
	if c.input.SlidePressed && c.canSlide() {
		c.startSlide()
	}
}

func (c *Controller) canDash() bool {
	return c.state.DashCooldown <= 0 &&
		!c.state.Grounded &&
		!c.state.WallSliding &&
		c.state.Mode != ModeSlide &&
		c.state.Mode != ModeDash
}

func (c *Controller) canSlide() bool {
	return c.state.SlideCooldown <= 0 &&
		c.state.Grounded &&
		c.state.Mode != ModeSlide
}

func (c *Controller) startDash() {
	c.enterMode(ModeDash, c.tun.DashDuration)
	c.state.savedGravity = c.body.GravityScale
	c.body.GravityScale = 0
	c.body.Velocity = gamemath.Vec2{X: c.body.Facing * c.tun.DashSpeed}
	c.state.DashCooldown = c.tun.DashCooldown
}

func (c *Controller) startSlide() {
	c.enterMode(ModeSlide, c.tun.SlideDuration)
	dir := c.body.Facing
	c.state.slideDirection = dir
	c.state.standPending = false
	c.setProfile(c.tun.SlidingCollider)

	speed := c.tun.SlideSpeed
	axis := gamemath.Vec2{X: dir}
	if along := math.Abs(c.body.Velocity.Dot(&axis)); along > speed {
		speed = along * c.tun.SlideSpeedBoost
	}
	c.body.Velocity.X = dir * speed
}

// StopSlide ends an active slide and starts the slide cooldown. The standing
// profile comes back as soon as there is headroom for it. It is a no-op when
// not sliding.
func (c *Controller) StopSlide() {
	if c.state.Mode == ModeSlide {
		c.exitMode()
	}
}

// enterMode cancels whatever timed mode is active before starting m.
func (c *Controller) enterMode(m Mode, duration float64) {
	c.exitMode()
	c.state.Mode = m
	c.state.ModeRemaining = duration
}

// exitMode undoes the side effects of the active mode. Leaving ModeFree does
// nothing, so each restore runs exactly once per mode entry.
func (c *Controller) exitMode() {
	switch c.state.Mode {
	case ModeDash:
		c.body.GravityScale = c.state.savedGravity
	case ModeSlide:
		c.standUp()
		c.state.SlideCooldown = c.tun.SlideCooldown
	}
	c.state.Mode = ModeFree
	c.state.ModeRemaining = 0
}

// standUp restores the standing profile, or keeps the sliding one while a
// ceiling is in the way.
func (c *Controller) standUp() {
	if c.probe != nil && !c.probe.Fits(c.body.Profile, c.tun.StandingCollider) {
		c.state.standPending = true
		return
	}
	c.state.standPending = false
	c.setProfile(c.tun.StandingCollider)
}

// advanceMode counts down dash and slide. The wall-jump lock runs on
// variable time in checkWallSliding.
func (c *Controller) advanceMode(dt float64) {
	switch c.state.Mode {
	case ModeDash:
		c.state.ModeRemaining -= dt
		if c.state.ModeRemaining <= 0 {
			c.exitMode()
		}
	case ModeSlide:
		c.state.ModeRemaining -= dt
		blocked := c.probe != nil && c.probe.WallAhead(c.state.slideDirection, c.tun.SlideWallCheckDistance)
		if c.state.ModeRemaining <= 0 || blocked {
			c.exitMode()
		}
	}
}

func (c *Controller) setProfile(p config.ColliderProfile) {
	if c.body.Profile == p {
		return
	}
	c.body.Profile = p
	if c.Hooks.ProfileChanged != nil {
		c.Hooks.ProfileChanged(p)
	}
}
