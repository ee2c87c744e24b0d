package factory

import (
	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBooster creates a trigger area that pushes the player. A booster with
// no velocity set launches straight up with the default force.
func CreateBooster(ecs *ecs.ECS, b leveldata.Booster) *donburi.Entry {
	booster := archetypes.Booster.Spawn(ecs)
	addToSpace(ecs, booster, newRect(b.X, b.Y, b.W, b.H, tags.ResolvBooster))

	vel := gamemath.Vec2{X: b.VelocityX, Y: b.VelocityY}
	if vel.IsZero() {
		vel.Y = cfg.Sandbox.BoosterForce
	}
	components.Booster.SetValue(booster, components.BoosterData{
		Velocity: vel,
		Override: b.Override,
	})
	return booster
}

func CreateTeleporter(ecs *ecs.ECS, t leveldata.Teleporter) *donburi.Entry {
	tp := archetypes.Teleporter.Spawn(ecs)
	addToSpace(ecs, tp, newRect(t.X, t.Y, t.W, t.H, tags.ResolvTeleporter))
	components.Teleporter.SetValue(tp, components.TeleporterData{
		ID:            t.ID,
		Target:        t.Target,
		ResetVelocity: t.ResetVelocity,
	})
	return tp
}

// CreateDeadZone creates an invisible collision zone that kills the player when touched
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)
	addToSpace(ecs, zone, newRect(x, y, w, h, tags.ResolvDeadZone))
	return zone
}
