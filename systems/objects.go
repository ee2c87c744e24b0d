package systems

import (
	"math"

	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/physics"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rideTolerance is how far (px) the feet may be from a platform top and still ride it.
const rideTolerance = 1.0

// UpdateObjects advances floating platforms along their paths and carries a
// player standing on one.
func UpdateObjects(ecs *ecs.ECS) {
	dt := frameDelta()
	var rider *resolv.Object
	if player, ok := livePlayer(ecs); ok {
		rider = components.Object.Get(player).Object
	}

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		path := components.Path.Get(e)
		seq := components.Tween.Get(e)

		t, _, done := seq.Update(float32(dt))
		if done {
			seq.Reset()
		}
		x := path.OriginX + path.MoveX*float64(t)
		y := path.OriginY + path.MoveY*float64(t)
		dx, dy := x-obj.X, y-obj.Y
		if dx == 0 && dy == 0 {
			return
		}

		onTop := rider != nil && riding(rider, obj.Object)
		// a sinking platform moves first so it never blocks its rider
		if onTop && dy <= 0 {
			carry(rider, dx, dy)
		}
		obj.X, obj.Y = x, y
		obj.Update()
		if onTop && dy > 0 {
			carry(rider, dx, dy)
		}
	})
}

// riding reports whether rider's feet rest on top of platform.
func riding(rider, platform *resolv.Object) bool {
	if math.Abs(rider.Bottom()-platform.Y) > rideTolerance {
		return false
	}
	return rider.X < platform.X+platform.W && rider.X+rider.W > platform.X
}

// carry moves rider by (dx, dy) pixels, still stopping at solids.
func carry(rider *resolv.Object, dx, dy float64) {
	ppu := cfg.World.PixelsPerUnit
	physics.Move(rider, gamemath.Vec2{X: dx / ppu, Y: -dy / ppu}, 1, ppu)
}
