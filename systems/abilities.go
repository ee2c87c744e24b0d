package systems

import (
	"log"

	"github.com/automoto/kinetic/components"
	"github.com/automoto/kinetic/config/controls"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AbilityToggle binds one ability gate to its debug key and display name.
type AbilityToggle struct {
	Action controls.ActionID
	Name   string
	Get    func(*movement.Controller) bool
	Set    func(*movement.Controller, bool)
}

var AbilityToggles = []AbilityToggle{
	{controls.ActionToggleDoubleJump, "double jump",
		func(c *movement.Controller) bool { return c.Abilities().DoubleJump },
		(*movement.Controller).UnlockDoubleJump},
	{controls.ActionToggleWallJump, "wall jump",
		func(c *movement.Controller) bool { return c.Abilities().WallJump },
		(*movement.Controller).UnlockWallJump},
	{controls.ActionToggleSprint, "sprint",
		func(c *movement.Controller) bool { return c.Abilities().Sprint },
		(*movement.Controller).UnlockSprint},
	{controls.ActionToggleDash, "dash",
		func(c *movement.Controller) bool { return c.Abilities().Dash },
		(*movement.Controller).UnlockDash},
	{controls.ActionToggleSlide, "slide",
		func(c *movement.Controller) bool { return c.Abilities().Slide },
		(*movement.Controller).UnlockSlide},
}

// UpdateAbilities flips ability gates on their toggle keys and saves the new
// unlock set.
func UpdateAbilities(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		ctrl := components.Movement.Get(e).Controller
		if ToggleAbilities(input, ctrl) {
			SaveAbilities(ctrl.Abilities())
		}
	})
}

// ToggleAbilities applies every toggle pressed this frame and reports
// whether anything changed.
func ToggleAbilities(input *components.PlayerInputData, ctrl *movement.Controller) bool {
	changed := false
	for _, t := range AbilityToggles {
		if input.JustPressed(t.Action) {
			t.Flip(ctrl)
			changed = true
		}
	}
	return changed
}

// Flip inverts the gate and returns its new value.
func (t AbilityToggle) Flip(ctrl *movement.Controller) bool {
	on := !t.Get(ctrl)
	t.Set(ctrl, on)
	log.Printf("ability %s: %v", t.Name, on)
	return on
}
