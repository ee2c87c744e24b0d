package movement

import (
	"testing"

	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDash(t *testing.T) {
	t.Run("holds speed without gravity then restores", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Dash: true}, nil)
		h.input.next.DashPressed = true

		h.ticks(7)
		require.Equal(t, ModeDash, h.c.Signals().Mode)
		assert.Equal(t, gamemath.Vec2{X: h.tun.DashSpeed}, h.c.Velocity())
		assert.Equal(t, 0.0, h.c.Body().GravityScale)

		h.tick()
		assert.Equal(t, ModeFree, h.c.Signals().Mode)
		assert.Equal(t, 1.0, h.c.Body().GravityScale)
	})

	t.Run("dashes toward facing", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Dash: true}, nil)
		h.input.next.Move = gamemath.Vec2{X: -1}
		h.tick()

		h.input.next.DashPressed = true
		h.c.Update(h.tun.FixedTimeStep)

		assert.Equal(t, -h.tun.DashSpeed, h.c.Velocity().X)
	})

	t.Run("cooldown blocks a second dash", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Dash: true}, nil)
		h.input.next.DashPressed = true
		h.ticks(10)
		require.Equal(t, ModeFree, h.c.Signals().Mode)

		h.input.next.DashPressed = true
		h.tick()
		assert.Equal(t, ModeFree, h.c.Signals().Mode)

		h.c.Update(h.tun.DashCooldown)
		h.input.next.DashPressed = true
		h.tick()
		assert.Equal(t, ModeDash, h.c.Signals().Mode)
	})

	t.Run("not from the ground or while locked", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Dash: true}, nil)
		h.probe.grounded = true
		h.input.next.DashPressed = true
		h.tick()
		assert.Equal(t, ModeFree, h.c.Signals().Mode)

		locked := newHarness(t, config.AbilityConfig{}, nil)
		locked.input.next.DashPressed = true
		locked.tick()
		assert.Equal(t, ModeFree, locked.c.Signals().Mode)
	})

	t.Run("a jump does not cancel it", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Dash: true, DoubleJump: true}, nil)
		h.input.next.DashPressed = true
		h.tick()

		h.input.next.JumpPressed = true
		h.tick()

		assert.Equal(t, ModeDash, h.c.Signals().Mode)
		assert.Equal(t, h.tun.DoubleJumpVelocity, h.c.Velocity().Y)
	})
}

func TestSlide(t *testing.T) {
	t.Run("from rest uses slide speed", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true

		h.c.Update(h.tun.FixedTimeStep)

		assert.Equal(t, h.tun.SlideSpeed, h.c.Velocity().X)
		assert.Equal(t, h.tun.SlidingCollider, h.c.Body().Profile)
		assert.True(t, h.c.Signals().Sliding)
	})

	t.Run("boosts speed above slide speed", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.c.SetVelocity(gamemath.Vec2{X: 25})
		h.input.next.SlidePressed = true

		h.c.Update(h.tun.FixedTimeStep)

		assert.InDelta(t, 25*h.tun.SlideSpeedBoost, h.c.Velocity().X, 1e-9)
	})

	t.Run("decays at the slowdown rate", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true

		h.tick()

		assert.InDelta(t, h.tun.SlideSpeed-h.tun.SlideSlowdownRate*h.tun.FixedTimeStep, h.c.Velocity().X, 1e-9)
	})

	t.Run("opposing input stops it", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true
		h.tick()

		h.input.next.Move = gamemath.Vec2{X: -0.4}
		h.tick()
		require.True(t, h.c.Signals().Sliding, "below the cancel threshold")

		h.input.next.Move = gamemath.Vec2{X: -1}
		h.c.Update(h.tun.FixedTimeStep)

		assert.False(t, h.c.Signals().Sliding)
		assert.Equal(t, h.tun.StandingCollider, h.c.Body().Profile)
		assert.Equal(t, h.tun.SlideCooldown, h.c.State().SlideCooldown)
	})

	t.Run("ends after its duration", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true

		h.ticks(49)
		require.True(t, h.c.Signals().Sliding)
		h.ticks(2)
		assert.False(t, h.c.Signals().Sliding)
	})

	t.Run("ends against a wall", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true
		h.tick()
		require.True(t, h.c.Signals().Sliding)

		h.probe.wallDir = 1
		h.tick()

		assert.False(t, h.c.Signals().Sliding)
	})

	t.Run("jump ends it", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true
		h.tick()

		h.input.next.JumpPressed = true
		h.tick()

		assert.False(t, h.c.Signals().Sliding)
		assert.Equal(t, h.tun.StandingCollider, h.c.Body().Profile)
		assert.Equal(t, h.tun.JumpVelocity, h.c.Velocity().Y)
	})

	t.Run("cooldown runs from the end of the slide", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true
		h.tick()
		h.c.StopSlide()

		h.input.next.SlidePressed = true
		h.tick()
		assert.False(t, h.c.Signals().Sliding)

		h.c.Update(h.tun.SlideCooldown)
		h.input.next.SlidePressed = true
		h.tick()
		assert.True(t, h.c.Signals().Sliding)
	})

	t.Run("needs ground", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.input.next.SlidePressed = true
		h.tick()
		assert.False(t, h.c.Signals().Sliding)
	})
}

func TestTimedModesAreExclusive(t *testing.T) {
	h := newHarness(t, config.AllAbilities(), nil)
	var profiles []config.ColliderProfile
	h.c.Hooks.ProfileChanged = func(p config.ColliderProfile) { profiles = append(profiles, p) }

	h.input.next.DashPressed = true
	h.tick()
	require.Equal(t, ModeDash, h.c.Signals().Mode)

	// landing mid-dash and sliding cancels the dash
	h.probe.grounded = true
	h.input.next.SlidePressed = true
	h.c.Update(h.tun.FixedTimeStep)

	assert.Equal(t, ModeSlide, h.c.Signals().Mode)
	assert.Equal(t, 1.0, h.c.Body().GravityScale)
	assert.Equal(t, []config.ColliderProfile{h.tun.SlidingCollider}, profiles)

	h.c.StopSlide()
	h.c.StopSlide()
	assert.Equal(t, []config.ColliderProfile{h.tun.SlidingCollider, h.tun.StandingCollider}, profiles, "restore runs once")
	assert.Equal(t, 1.0, h.c.Body().GravityScale)
}

func TestSlideEndsCrouchedUnderCeiling(t *testing.T) {
	h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
	var profiles []config.ColliderProfile
	h.c.Hooks.ProfileChanged = func(p config.ColliderProfile) { profiles = append(profiles, p) }

	h.probe.grounded = true
	h.input.next.SlidePressed = true
	h.tick()
	require.Equal(t, ModeSlide, h.c.Signals().Mode)

	h.probe.lowCeiling = true
	h.c.StopSlide()

	assert.Equal(t, ModeFree, h.c.Signals().Mode)
	assert.Equal(t, h.tun.SlideCooldown, h.c.State().SlideCooldown)
	assert.Equal(t, h.tun.SlidingCollider, h.c.Body().Profile, "no headroom to stand")

	h.ticks(5)
	assert.Equal(t, h.tun.SlidingCollider, h.c.Body().Profile)

	h.probe.lowCeiling = false
	h.tick()
	assert.Equal(t, h.tun.StandingCollider, h.c.Body().Profile)
	assert.Equal(t, []config.ColliderProfile{h.tun.SlidingCollider, h.tun.StandingCollider}, profiles)
}

func TestWallJumpCancelsDash(t *testing.T) {
	h := newHarness(t, config.AllAbilities(), nil)
	h.input.next.DashPressed = true
	h.tick()
	require.Equal(t, 0.0, h.c.Body().GravityScale)

	h.probe.wallDir = 1
	h.input.next.Move = gamemath.Vec2{X: 1}
	h.tick()
	h.input.next.JumpPressed = true
	h.tick()

	assert.Equal(t, ModeWallJump, h.c.Signals().Mode)
	assert.Equal(t, 1.0, h.c.Body().GravityScale)
}

func TestRevokingAbilities(t *testing.T) {
	t.Run("dash", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Dash: true}, nil)
		h.input.next.DashPressed = true
		h.tick()

		h.c.UnlockDash(false)

		assert.Equal(t, ModeFree, h.c.Signals().Mode)
		assert.Equal(t, 1.0, h.c.Body().GravityScale)
	})

	t.Run("slide", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Slide: true}, nil)
		h.probe.grounded = true
		h.input.next.SlidePressed = true
		h.tick()

		h.c.UnlockSlide(false)

		assert.False(t, h.c.Signals().Sliding)
		assert.Equal(t, h.tun.StandingCollider, h.c.Body().Profile)
	})

	t.Run("wall jump", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{WallJump: true}, nil)
		h.probe.wallDir = 1
		h.input.next.Move = gamemath.Vec2{X: 1}
		h.tick()
		h.input.next.JumpPressed = true
		h.tick()
		require.Equal(t, ModeWallJump, h.c.Signals().Mode)

		h.c.UnlockWallJump(false)

		assert.Equal(t, ModeFree, h.c.Signals().Mode)
		assert.False(t, h.c.Signals().WallSliding)
	})

	t.Run("double jump", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{DoubleJump: true}, nil)
		require.True(t, h.c.State().DoubleJumpAvailable)

		h.c.UnlockDoubleJump(false)
		assert.False(t, h.c.State().DoubleJumpAvailable)

		h.input.next.JumpPressed = true
		h.tick()
		assert.False(t, h.c.Signals().Jumping)
	})

	t.Run("sprint", func(t *testing.T) {
		h := newHarness(t, config.AbilityConfig{Sprint: true}, nil)
		h.input.next.Sprint = true
		h.input.next.Move = gamemath.Vec2{X: 1}
		h.tick()
		require.True(t, h.c.Signals().Sprinting)

		h.c.UnlockSprint(false)
		assert.False(t, h.c.Signals().Sprinting)
	})

	t.Run("set abilities applies each gate", func(t *testing.T) {
		h := newHarness(t, config.AllAbilities(), nil)
		h.input.next.DashPressed = true
		h.tick()

		h.c.SetAbilities(config.AbilityConfig{})

		assert.Equal(t, config.AbilityConfig{}, h.c.Abilities())
		assert.Equal(t, ModeFree, h.c.Signals().Mode)
	})
}

func TestReset(t *testing.T) {
	h := newHarness(t, config.AllAbilities(), nil)
	h.probe.grounded = true
	h.input.next.Move = gamemath.Vec2{X: -1}
	h.input.next.SlidePressed = true
	h.tick()
	require.True(t, h.c.Signals().Sliding)

	h.c.Reset()

	body := h.c.Body()
	assert.Equal(t, gamemath.Vec2{}, body.Velocity)
	assert.Equal(t, 1.0, body.GravityScale)
	assert.Equal(t, config.DirectionRight, body.Facing)
	assert.Equal(t, h.tun.StandingCollider, body.Profile)

	st := h.c.State()
	assert.Equal(t, ModeFree, st.Mode)
	assert.Zero(t, st.SlideCooldown)
	assert.Zero(t, st.DashCooldown)
	assert.True(t, st.DoubleJumpAvailable)
	assert.False(t, st.Jumping)
	assert.Equal(t, config.AllAbilities(), h.c.Abilities(), "gates survive a reset")
}

func TestResetDuringDashRestoresGravity(t *testing.T) {
	h := newHarness(t, config.AbilityConfig{Dash: true}, nil)
	h.input.next.DashPressed = true
	h.tick()

	h.c.Reset()

	assert.Equal(t, 1.0, h.c.Body().GravityScale)
	assert.Equal(t, ModeFree, h.c.Signals().Mode)
}
