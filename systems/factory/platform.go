package factory

import (
	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/components"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const defaultPlatformLeg = 2 // seconds

func CreateFloatingPlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	addToSpace(ecs, platform, newRect(p.X, p.Y, p.W, p.H, tags.ResolvSolid, tags.ResolvGround))

	leg := float32(p.Duration)
	if leg <= 0 {
		leg = defaultPlatformLeg
	}

	// The floating platform moves using a *gween.Sequence of tweens on its
	// path progress, moving it back and forth.
	tw := gween.NewSequence(
		gween.New(0, 1, leg, ease.InOutSine),
		gween.New(1, 0, leg, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)
	components.Path.SetValue(platform, components.PathData{
		OriginX: p.X,
		OriginY: p.Y,
		MoveX:   p.MoveX,
		MoveY:   p.MoveY,
	})

	return platform
}
