package systems

import (
	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runThreshold is the horizontal speed (units/s) below which a grounded body
// reads as idle.
const runThreshold = 0.1

// UpdateStates derives the presentation state of each player from the
// controller's signals.
func UpdateStates(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		sig := components.Movement.Get(e).Controller.Signals()
		next := StateFor(sig, e.HasComponent(components.Death))

		if next != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
			return
		}
		state.StateTimer++
	})
}

// StateFor maps controller signals onto a StateID. Timed modes win over
// contact states, which win over airborne direction.
func StateFor(sig movement.Signals, dead bool) cfg.StateID {
	switch {
	case dead:
		return cfg.Dead
	case sig.Dashing:
		return cfg.Dash
	case sig.Sliding:
		return cfg.Slide
	case sig.WallSliding:
		return cfg.WallSlide
	case !sig.Grounded && sig.VerticalSpeed > 0:
		return cfg.Jump
	case !sig.Grounded:
		return cfg.Fall
	case sig.HorizontalSpeed < runThreshold:
		return cfg.Idle
	case sig.Sprinting:
		return cfg.Sprinting
	}
	return cfg.Running
}
