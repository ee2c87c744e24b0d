// Package physics connects the movement controller to a resolv space: it
// answers ground and wall probes, moves the collider by the controller's
// velocity and keeps the collider in sync with the collision profile.
//
// The controller works in world units with +y up; resolv works in pixels with
// +y down. Everything in this package converts with PixelsPerUnit.
package physics

import (
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
)

// Probe implements movement.Probe against a resolv object.
type Probe struct {
	Object        *resolv.Object
	GroundRadius  float64 // world units
	PixelsPerUnit float64
}

func NewProbe(obj *resolv.Object, groundRadius, ppu float64) *Probe {
	return &Probe{Object: obj, GroundRadius: groundRadius, PixelsPerUnit: ppu}
}

// Grounded checks a square of GroundRadius around the bottom center of the
// collider against objects tagged ground.
func (p *Probe) Grounded() bool {
	obj := p.Object
	if obj == nil {
		return false
	}
	r := p.GroundRadius * p.PixelsPerUnit
	x := obj.X + obj.W/2 - r
	y := obj.Bottom() - r
	return len(overlapping(obj, 0, r, x, y, 2*r, 2*r, tags.ResolvGround)) > 0
}

// WallAhead casts a one pixel tall strip from the collider center.
func (p *Probe) WallAhead(direction, distance float64) bool {
	obj := p.Object
	if obj == nil || direction == 0 {
		return false
	}
	length := distance * p.PixelsPerUnit
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	x := cx
	if direction < 0 {
		x = cx - length
	}
	return len(overlapping(obj, direction*length, 0, x, cy-0.5, length, 1, tags.ResolvWall)) > 0
}

// Fits reports whether the collider, resized from one profile to another,
// would stay clear of solid objects. Flush contacts do not count.
func (p *Probe) Fits(from, to config.ColliderProfile) bool {
	obj := p.Object
	if obj == nil || obj.Space == nil {
		return true
	}
	x, y, w, h := profileBounds(obj, from, to, p.PixelsPerUnit)
	x, y, w, h = x+skin, y+skin, w-2*skin, h-2*skin

	sp := obj.Space
	cx, cy := sp.WorldToSpace(x, y)
	ex, ey := sp.WorldToSpace(x+w, y+h)
	for iy := cy; iy <= ey; iy++ {
		for ix := cx; ix <= ex; ix++ {
			cell := sp.Cell(ix, iy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o != obj && o.HasTags(tags.ResolvSolid) && gamemath.Overlaps(x, y, w, h, o.X, o.Y, o.W, o.H) {
					return false
				}
			}
		}
	}
	return true
}

// Touching returns the objects with any of tags whose bounds overlap obj.
func Touching(obj *resolv.Object, tags ...string) []*resolv.Object {
	return overlapping(obj, 0, 0, obj.X, obj.Y, obj.W, obj.H, tags...)
}

// overlapping uses resolv's cell check as the broad phase and keeps only the
// objects that really intersect the given rectangle. Cells are coarse, so
// Check alone reports neighbors that are merely nearby.
func overlapping(obj *resolv.Object, dx, dy, x, y, w, h float64, tags ...string) []*resolv.Object {
	check := obj.Check(dx, dy, tags...)
	if check == nil {
		return nil
	}
	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(tags...) {
		if o == obj {
			continue
		}
		if gamemath.Overlaps(x, y, w, h, o.X, o.Y, o.W, o.H) {
			hits = append(hits, o)
		}
	}
	return hits
}
