package systems

import (
	"log"

	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/config/controls"
	"github.com/automoto/kinetic/physics"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoosters applies a booster's velocity on the frame the player enters it.
func UpdateBoosters(ecs *ecs.ECS) {
	player, ok := livePlayer(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	ctrl := components.Movement.Get(player).Controller

	touching := map[*donburi.Entry]bool{}
	for _, o := range physics.Touching(obj.Object, tags.ResolvBooster) {
		if e, ok := entryOf(o); ok {
			touching[e] = true
		}
	}

	tags.Booster.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Booster.Get(e)
		inside := touching[e]
		if inside && !b.Inside {
			ctrl.SetVelocity(Boost(ctrl.Velocity(), b))
		}
		b.Inside = inside
	})
}

// Boost returns the velocity after a booster fires. An override replaces the
// velocity, otherwise the boost is added as an impulse.
func Boost(v gamemath.Vec2, b *components.BoosterData) gamemath.Vec2 {
	if b.Override {
		return b.Velocity
	}
	return v.Add(b.Velocity)
}

// UpdateTeleporters sends the player to a teleporter's partner. Both ends go
// on cooldown so the player is not bounced straight back.
func UpdateTeleporters(ecs *ecs.ECS) {
	dt := frameDelta()
	tags.Teleporter.Each(ecs.World, func(e *donburi.Entry) {
		tp := components.Teleporter.Get(e)
		tp.Cooldown = max(0, tp.Cooldown-dt)
	})

	player, ok := livePlayer(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	ctrl := components.Movement.Get(player).Controller

	for _, o := range physics.Touching(obj.Object, tags.ResolvTeleporter) {
		from, ok := entryOf(o)
		if !ok {
			continue
		}
		src := components.Teleporter.Get(from)
		if src.Cooldown > 0 {
			continue
		}
		to, ok := findTeleporter(ecs, src.Target)
		if !ok {
			continue
		}

		dst := components.Object.Get(to)
		physics.PlaceFeet(obj.Object, dst.X+dst.W/2, dst.Y+dst.H)
		if src.ResetVelocity {
			ctrl.SetVelocity(gamemath.Vec2{})
		}
		src.Cooldown = cfg.Sandbox.TeleportCooldown
		components.Teleporter.Get(to).Cooldown = cfg.Sandbox.TeleportCooldown
		return
	}
}

func findTeleporter(ecs *ecs.ECS, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Teleporter.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Teleporter.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// UpdateDeadZones freezes a player that touches a dead zone, then respawns
// it after the configured delay. The reset key respawns at any time.
func UpdateDeadZones(ecs *ecs.ECS) {
	// collected first, adding or removing Death moves the entry between archetypes
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	for _, e := range players {
		obj := components.Object.Get(e)
		mv := components.Movement.Get(e)

		if e.HasComponent(components.Death) {
			death := components.Death.Get(e)
			death.Timer--
			if death.Timer <= 0 {
				e.RemoveComponent(components.Death)
				Respawn(e)
			}
			continue
		}

		if components.PlayerInput.Get(e).JustPressed(controls.ActionReset) {
			Respawn(e)
			continue
		}

		if len(physics.Touching(obj.Object, tags.ResolvDeadZone)) > 0 {
			mv.Controller.SetVelocity(gamemath.Vec2{})
			log.Printf("player died at (%.0f, %.0f)", obj.X, obj.Y)
			e.AddComponent(components.Death)
			components.Death.SetValue(e, components.DeathData{Timer: cfg.Sandbox.RespawnDelayFrames})
		}
	}
}

// Respawn puts the player back on its spawn point with a fresh controller state.
func Respawn(e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	mv := components.Movement.Get(e)

	mv.Controller.Reset()
	mv.Stepper.Reset()
	physics.PlaceFeet(obj.Object, player.SpawnX, player.SpawnY)
}

// livePlayer returns the first player that is not in its death sequence.
func livePlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	player, ok := tags.Player.First(ecs.World)
	if !ok || player.HasComponent(components.Death) {
		return nil, false
	}
	return player, true
}

// entryOf returns the ECS entry linked to a collider.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	e, ok := o.Data.(*donburi.Entry)
	return e, ok
}
