// Package sim runs the character controller without a window: it builds a
// collision space from a level, feeds scripted input and steps the body the
// same way the game does.
package sim

import (
	"log"

	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
)

// NewSpace builds a resolv.Space holding the level's static colliders.
// Floating platforms are placed at their origin and stay there.
func NewSpace(level *leveldata.Level, cellSize int) *resolv.Space {
	space := resolv.NewSpace(level.Width, level.Height, cellSize, cellSize)

	add := func(r leveldata.Rect, t ...string) {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, t...)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}
	for _, r := range level.Ground {
		add(r, tags.ResolvSolid, tags.ResolvGround, tags.ResolvWall)
	}
	for _, r := range level.Walls {
		add(r, tags.ResolvSolid, tags.ResolvWall)
	}
	for _, p := range level.Platforms {
		add(p.Rect, tags.ResolvSolid, tags.ResolvGround)
	}
	for _, r := range level.DeadZones {
		add(r, tags.ResolvDeadZone)
	}

	log.Printf("Loaded level %s: %d ground, %d walls, %d dead zones, %dx%d map",
		level.Name, len(level.Ground), len(level.Walls), len(level.DeadZones), level.Width, level.Height)

	return space
}
