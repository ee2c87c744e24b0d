package systems

import (
	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/sim"
	"github.com/automoto/kinetic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the variable-rate time of one ECS update.
var frameDelta = func() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateMovement runs the controller's frame phase, then as many fixed steps
// as the stepper grants. Frozen (dead) players are skipped.
func UpdateMovement(ecs *ecs.ECS) {
	dt := frameDelta()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		mv := components.Movement.Get(e)
		obj := components.Object.Get(e)
		sim.Advance(mv.Controller, &mv.Stepper, obj.Object, dt, cfg.World.PixelsPerUnit)
	})
}
