package factory

import (
	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a block the player can stand on and wall slide along.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Platform.Spawn(ecs)
	addToSpace(ecs, ground, newRect(x, y, w, h, tags.ResolvSolid, tags.ResolvGround, tags.ResolvWall))
	return ground
}

// CreateWall creates a wall-only block. It still blocks movement but never
// counts as ground.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addToSpace(ecs, wall, newRect(x, y, w, h, tags.ResolvSolid, tags.ResolvWall))
	return wall
}
