package factory

import (
	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and every level object, then the
// player at the spawn and a camera looking at it. It returns the player.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})

	CreateSpace(ecs, level.Width, level.Height, cfg.World.CellSize, cfg.World.CellSize)

	for _, r := range level.Ground {
		CreateGround(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Walls {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, p := range level.Platforms {
		CreateFloatingPlatform(ecs, p)
	}
	for _, b := range level.Boosters {
		CreateBooster(ecs, b)
	}
	for _, t := range level.Teleports {
		CreateTeleporter(ecs, t)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.W, r.H)
	}

	player := CreatePlayer(ecs, level.Spawn.X, level.Spawn.Y)
	CreateCamera(ecs, level.Spawn.X, level.Spawn.Y)
	return player
}
