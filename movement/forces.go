package movement

import (
	"math"

	"github.com/automoto/kinetic/shared/gamemath"
)

// minForceSqr is the squared magnitude under which a force or velocity is ignored.
const minForceSqr = 0.01

// move integrates one fixed step of free movement.
func (c *Controller) move(dt float64) {
	v := c.body.Velocity
	force := c.inputForce().Add(c.gravity()).Add(drag(v, c.tun.DragConstant))
	next := v.Add(force.MulScalar(dt))

	if c.state.Grounded {
		next = next.Add(c.stoppingForce(next, dt))
		next = next.Add(c.friction(next, dt))
	}
	c.body.Velocity = next
}

// inputForce is the horizontal drive, suppressed once the body already moves
// faster than the apply limit in the force's direction.
func (c *Controller) inputForce() gamemath.Vec2 {
	amount := c.tun.WalkForce
	if c.state.Sprinting {
		amount = c.tun.SprintForce
	}
	limit := c.tun.WalkForceApplyLimit
	if !c.state.Grounded {
		amount *= c.tun.AirControl
		limit = c.tun.AirForceApplyLimit
	}

	force := gamemath.Vec2{X: c.input.Move.X * amount}
	if gamemath.SqrMagnitude(force) < minForceSqr {
		return gamemath.Vec2{}
	}
	if gamemath.Direction(force).Dot(&c.body.Velocity) > limit {
		return gamemath.Vec2{}
	}
	return force
}

func (c *Controller) gravity() gamemath.Vec2 {
	if c.state.Grounded && !c.tun.ApplyGravityOnGround {
		return gamemath.Vec2{}
	}
	return gamemath.Vec2{Y: -c.tun.Gravity * c.body.GravityScale}
}

// drag is quadratic in speed and opposes the velocity.
func drag(v gamemath.Vec2, k float64) gamemath.Vec2 {
	return gamemath.Direction(v).MulScalar(-0.5 * gamemath.SqrMagnitude(v) * k)
}

// stoppingForce brakes when there is no horizontal input or, if enabled, when
// the input points against the motion.
func (c *Controller) stoppingForce(v gamemath.Vec2, dt float64) gamemath.Vec2 {
	if gamemath.SqrMagnitude(v) < minForceSqr {
		return gamemath.Vec2{}
	}
	x := c.input.Move.X
	braking := c.tun.ApplyStoppingForceWhenActivelyBraking && gamemath.Sign(x) != gamemath.Sign(v.X)
	if math.Abs(x) >= c.tun.InputDeadzone && !braking {
		return gamemath.Vec2{}
	}
	return opposeClamped(v, c.tun.StoppingForce*dt)
}

func (c *Controller) friction(v gamemath.Vec2, dt float64) gamemath.Vec2 {
	if !c.state.Grounded || gamemath.SqrMagnitude(v) < minForceSqr {
		return gamemath.Vec2{}
	}
	return opposeClamped(v, c.tun.FrictionConstant*dt)
}

// opposeClamped returns a change against v of at most maxChange, never
// reversing the direction of travel.
func opposeClamped(v gamemath.Vec2, maxChange float64) gamemath.Vec2 {
	dir := gamemath.Direction(v).MulScalar(-1)
	speed := math.Abs(v.Dot(&dir))
	if speed < maxChange {
		return dir.MulScalar(speed)
	}
	return dir.MulScalar(maxChange)
}

// slideMove decays horizontal speed while gravity keeps acting.
func (c *Controller) slideMove(dt float64) {
	v := c.body.Velocity
	v.X = gamemath.MoveTowards(v.X, 0, c.tun.SlideSlowdownRate*dt)
	v.Y += c.gravity().Y * dt
	c.body.Velocity = v
}

// cleanupVelocity snaps residual speed to exact zero. Vertical speed is only
// snapped on the ground so the apex of a jump is not flattened.
func (c *Controller) cleanupVelocity() {
	thr := c.tun.VelocityCleanupThreshold
	if math.Abs(c.body.Velocity.X) < thr {
		c.body.Velocity.X = 0
	}
	if math.Abs(c.body.Velocity.Y) < thr && c.state.Grounded {
		c.body.Velocity.Y = 0
	}
}
