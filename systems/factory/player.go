package factory

import (
	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/physics"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet on (x, y) in pixels. The
// controller reads the global tunables, so a hot reload reaches it through
// SetTunables.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	ppu := cfg.World.PixelsPerUnit

	profile := cfg.Movement.StandingCollider
	obj := newRect(0, 0, profile.Width*ppu, profile.Height*ppu, tags.ResolvPlayer)
	addToSpace(ecs, player, obj)
	physics.PlaceFeet(obj, x, y)

	probe := physics.NewProbe(obj, cfg.Movement.GroundCheckRadius, ppu)
	buffer := &movement.InputBuffer{}
	ctrl := movement.New(&cfg.Movement, cfg.Abilities, probe, buffer)

	// Mirror profile switches onto the collider around the same pivot.
	ctrl.Hooks.ProfileChanged = func(next cfg.ColliderProfile) {
		physics.ApplyProfile(obj, profile, next, cfg.World.PixelsPerUnit)
		profile = next
	}
	ctrl.Hooks.Jumped = func(kind movement.JumpKind) {
		state := components.State.Get(player)
		state.Jumps++
		state.LastJump = kind
	}

	components.Movement.SetValue(player, components.MovementData{
		Controller: ctrl,
		Stepper: movement.Stepper{
			Step:     cfg.Movement.FixedTimeStep,
			MaxSteps: cfg.Movement.MaxFixedSteps,
		},
		Probe: probe,
		Input: buffer,
	})
	components.Player.SetValue(player, components.PlayerData{SpawnX: x, SpawnY: y})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	return player
}
