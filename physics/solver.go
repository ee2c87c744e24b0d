package physics

import (
	"math"

	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
)

// skin absorbs floating point drift after a contact snap, in pixels.
const skin = 0.01

// MoveResult reports which axes were stopped by solid objects.
type MoveResult struct {
	BlockedX bool
	BlockedY bool
}

// Move displaces obj by vel*dt, horizontal axis first, stopping flush
// against anything tagged solid.
func Move(obj *resolv.Object, vel gamemath.Vec2, dt, ppu float64) MoveResult {
	var res MoveResult
	dx := vel.X * dt * ppu
	dy := -vel.Y * dt * ppu

	if dx != 0 {
		dx, res.BlockedX = resolveAxis(obj, dx, 0)
		obj.X += dx
		obj.Update()
	}
	if dy != 0 {
		dy, res.BlockedY = resolveAxis(obj, 0, dy)
		obj.Y += dy
		obj.Update()
	}
	return res
}

// Apply moves obj and zeroes the blocked velocity components.
func Apply(obj *resolv.Object, vel gamemath.Vec2, dt, ppu float64) gamemath.Vec2 {
	res := Move(obj, vel, dt, ppu)
	if res.BlockedX {
		vel.X = 0
	}
	if res.BlockedY {
		vel.Y = 0
	}
	return vel
}

// resolveAxis returns how far obj may travel along one axis. Exactly one of
// dx, dy is non-zero.
func resolveAxis(obj *resolv.Object, dx, dy float64) (float64, bool) {
	// resolv leaves the last pixel of the leading edge out of its cell
	// lookup, pad by one so flush contacts on a cell border are found.
	var padX, padY float64
	if dx != 0 {
		padX = gamemath.Sign(dx)
	} else {
		padY = gamemath.Sign(dy)
	}
	check := obj.Check(dx+padX, dy+padY, tags.ResolvSolid)
	if check == nil {
		return dx + dy, false
	}

	// swept bounds of the move, trimmed on the other axis so a neighbor that
	// is only flush with a side never blocks
	x, y := math.Min(obj.X, obj.X+dx), math.Min(obj.Y, obj.Y+dy)
	w, h := obj.W+math.Abs(dx), obj.H+math.Abs(dy)
	if dx != 0 {
		y, h = y+skin, h-2*skin
	} else {
		x, w = x+skin, w-2*skin
	}

	var nearest *resolv.Object
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if o == obj || !ahead(obj, o, dx, dy) || !gamemath.Overlaps(x, y, w, h, o.X, o.Y, o.W, o.H) {
			continue
		}
		if nearest == nil || closer(o, nearest, dx, dy) {
			nearest = o
		}
	}
	if nearest == nil {
		return dx + dy, false
	}

	contact := check.ContactWithObject(nearest)
	if dx != 0 {
		return clampToward(contact.X(), dx), true
	}
	return clampToward(contact.Y(), dy), true
}

// ahead reports whether o's near face lies in the direction of travel.
// Objects the collider already overlaps from behind never block.
func ahead(obj, o *resolv.Object, dx, dy float64) bool {
	switch {
	case dx > 0:
		return o.X >= obj.X+obj.W-skin
	case dx < 0:
		return o.X+o.W <= obj.X+skin
	case dy > 0:
		return o.Y >= obj.Y+obj.H-skin
	default:
		return o.Y+o.H <= obj.Y+skin
	}
}

func closer(a, b *resolv.Object, dx, dy float64) bool {
	switch {
	case dx > 0:
		return a.X < b.X
	case dx < 0:
		return a.X+a.W > b.X+b.W
	case dy > 0:
		return a.Y < b.Y
	default:
		return a.Y+a.H > b.Y+b.H
	}
}

// clampToward keeps the contact delta between zero and the requested move so
// an object already touching a solid is never pushed through or backwards.
func clampToward(contact, want float64) float64 {
	if want > 0 {
		return gamemath.Clamp(contact, 0, want)
	}
	return gamemath.Clamp(contact, want, 0)
}

// ApplyProfile resizes obj for a new collision profile. The body's pivot
// (collider center minus its offset) stays where it is, so swapping between
// profiles that share a bottom edge keeps the feet in place.
func ApplyProfile(obj *resolv.Object, from, to config.ColliderProfile, ppu float64) {
	x, y, w, h := profileBounds(obj, from, to, ppu)
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Update()
}

// profileBounds is where obj would sit, in pixels, after switching profiles.
func profileBounds(obj *resolv.Object, from, to config.ColliderProfile, ppu float64) (x, y, w, h float64) {
	px := obj.X + obj.W/2 - from.OffsetX*ppu
	py := obj.Y + obj.H/2 + from.OffsetY*ppu

	w, h = to.Width*ppu, to.Height*ppu
	return px + to.OffsetX*ppu - w/2, py - to.OffsetY*ppu - h/2, w, h
}

// PlaceFeet moves obj so its bottom center sits on (x, y) in pixels.
func PlaceFeet(obj *resolv.Object, x, y float64) {
	obj.X = x - obj.W/2
	obj.Y = y - obj.H
	obj.Update()
}

// PlaceCenter moves obj so its center sits on (x, y) in pixels.
func PlaceCenter(obj *resolv.Object, x, y float64) {
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}
