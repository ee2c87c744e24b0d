package sim

import (
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/physics"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
)

// Runner owns one character in a level space.
type Runner struct {
	Level      *leveldata.Level
	Space      *resolv.Space
	Object     *resolv.Object
	Controller *movement.Controller
	Stepper    movement.Stepper
	Probe      *physics.Probe

	input  movement.InputBuffer
	ppu    float64
	Frame  int
	Deaths int
}

// New places a character on the level's spawn.
func New(level *leveldata.Level, tun *config.MovementConfig, abilities config.AbilityConfig, world config.WorldConfig) *Runner {
	r := &Runner{
		Level: level,
		Space: NewSpace(level, world.CellSize),
		ppu:   world.PixelsPerUnit,
	}

	profile := tun.StandingCollider
	w, h := profile.Width*r.ppu, profile.Height*r.ppu
	r.Object = resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	r.Object.SetShape(resolv.NewRectangle(0, 0, w, h))
	r.Space.Add(r.Object)
	physics.PlaceFeet(r.Object, level.Spawn.X, level.Spawn.Y)

	r.Probe = physics.NewProbe(r.Object, tun.GroundCheckRadius, r.ppu)
	r.Controller = movement.New(tun, abilities, r.Probe, &r.input)
	r.Controller.Hooks.ProfileChanged = func(next config.ColliderProfile) {
		physics.ApplyProfile(r.Object, profile, next, r.ppu)
		profile = next
	}
	r.Stepper = movement.Stepper{Step: tun.FixedTimeStep, MaxSteps: tun.MaxFixedSteps}
	return r
}

// Step runs one rendered frame of dt seconds with snap as its input. A body
// that touches a dead zone is respawned at once.
func (r *Runner) Step(snap movement.Snapshot, dt float64) {
	r.input.Push(snap)
	Advance(r.Controller, &r.Stepper, r.Object, dt, r.ppu)

	if len(physics.Touching(r.Object, tags.ResolvDeadZone)) > 0 {
		r.Deaths++
		r.Respawn()
	}
	r.Frame++
}

// Respawn returns the character to the spawn at rest.
func (r *Runner) Respawn() {
	r.Controller.Reset()
	r.Stepper.Reset()
	physics.PlaceFeet(r.Object, r.Level.Spawn.X, r.Level.Spawn.Y)
}

// Feet returns the bottom center of the collider in pixels.
func (r *Runner) Feet() (x, y float64) {
	return r.Object.X + r.Object.W/2, r.Object.Y + r.Object.H
}

// Advance runs the controller's frame phase and then every fixed step the
// stepper grants, moving obj after each step and feeding blocked axes back
// into the controller's velocity.
func Advance(ctrl *movement.Controller, stepper *movement.Stepper, obj *resolv.Object, dt, ppu float64) {
	ctrl.Update(dt)

	step := ctrl.Tunables().FixedTimeStep
	for n := stepper.Advance(dt); n > 0; n-- {
		ctrl.FixedUpdate()
		ctrl.SetVelocity(physics.Apply(obj, ctrl.Velocity(), step, ppu))
	}
}
