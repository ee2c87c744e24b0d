package physics

import (
	"testing"

	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ppu = 16.0

// testSpace builds a floor along y=160 and a wall starting at x=200.
func testSpace(t *testing.T) (*resolv.Space, *resolv.Object) {
	t.Helper()
	space := resolv.NewSpace(320, 320, 16, 16)

	floor := resolv.NewObject(0, 160, 320, 16, tags.ResolvSolid, tags.ResolvGround)
	floor.SetShape(resolv.NewRectangle(0, 0, 320, 16))
	wall := resolv.NewObject(200, 0, 16, 160, tags.ResolvSolid, tags.ResolvWall)
	wall.SetShape(resolv.NewRectangle(0, 0, 16, 160))
	space.Add(floor, wall)

	prof := config.DefaultMovement().StandingCollider
	w, h := prof.Width*ppu, prof.Height*ppu
	player := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	player.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(player)
	return space, player
}

func TestProbeGrounded(t *testing.T) {
	_, player := testSpace(t)
	probe := NewProbe(player, 0.2, ppu)

	PlaceFeet(player, 100, 160)
	assert.True(t, probe.Grounded())

	PlaceFeet(player, 100, 150)
	assert.False(t, probe.Grounded())

	// within the radius still counts
	PlaceFeet(player, 100, 158)
	assert.True(t, probe.Grounded())

	assert.False(t, (&Probe{}).Grounded())
}

func TestProbeWallAhead(t *testing.T) {
	_, player := testSpace(t)
	probe := NewProbe(player, 0.2, ppu)

	PlaceFeet(player, 195, 160)
	assert.True(t, probe.WallAhead(1, 0.5))
	assert.False(t, probe.WallAhead(-1, 0.5))
	assert.False(t, probe.WallAhead(0, 0.5))

	PlaceFeet(player, 150, 160)
	assert.False(t, probe.WallAhead(1, 0.5))
	assert.True(t, probe.WallAhead(1, 4))
}

func TestTouching(t *testing.T) {
	space, player := testSpace(t)
	zone := resolv.NewObject(40, 100, 32, 32, tags.ResolvDeadZone)
	space.Add(zone)

	PlaceFeet(player, 100, 160)
	assert.Empty(t, Touching(player, tags.ResolvDeadZone))

	PlaceCenter(player, 56, 116)
	hits := Touching(player, tags.ResolvDeadZone)
	require.Len(t, hits, 1)
	assert.Same(t, zone, hits[0])
}

func TestMoveLandsOnFloor(t *testing.T) {
	_, player := testSpace(t)
	PlaceFeet(player, 100, 150)

	vel := gamemath.Vec2{Y: -20}
	res := Move(player, vel, 0.02, ppu)
	assert.False(t, res.BlockedY)
	assert.InDelta(t, 156.4, player.Bottom(), 1e-6)

	res = Move(player, vel, 0.02, ppu)
	assert.True(t, res.BlockedY)
	assert.InDelta(t, 160, player.Bottom(), 1e-6)

	// resting on the floor keeps blocking
	res = Move(player, gamemath.Vec2{Y: -1}, 0.02, ppu)
	assert.True(t, res.BlockedY)
	assert.InDelta(t, 160, player.Bottom(), 1e-6)
}

func TestMoveStopsAtWall(t *testing.T) {
	_, player := testSpace(t)
	PlaceFeet(player, 190, 160)

	res := Move(player, gamemath.Vec2{X: 25}, 0.02, ppu)
	assert.True(t, res.BlockedX)
	assert.InDelta(t, 200, player.X+player.W, 1e-6)

	// moving away is free
	res = Move(player, gamemath.Vec2{X: -25}, 0.02, ppu)
	assert.False(t, res.BlockedX)
	assert.InDelta(t, 192, player.X+player.W, 1e-6)
}

func TestMoveAlongFloorIsNotBlocked(t *testing.T) {
	_, player := testSpace(t)
	PlaceFeet(player, 100, 160)
	startX := player.X

	res := Move(player, gamemath.Vec2{X: 10}, 0.02, ppu)
	assert.False(t, res.BlockedX)
	assert.InDelta(t, startX+3.2, player.X, 1e-6)
}

func TestApplyZeroesBlockedAxes(t *testing.T) {
	_, player := testSpace(t)
	PlaceFeet(player, 190, 160)

	vel := Apply(player, gamemath.Vec2{X: 25, Y: -5}, 0.02, ppu)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, 0.0, vel.Y)

	vel = Apply(player, gamemath.Vec2{X: -5, Y: 5}, 0.02, ppu)
	assert.Equal(t, gamemath.Vec2{X: -5, Y: 5}, vel)
}

func TestApplyProfileKeepsFeet(t *testing.T) {
	_, player := testSpace(t)
	tun := config.DefaultMovement()
	PlaceFeet(player, 100, 160)
	centerX := player.X + player.W/2

	ApplyProfile(player, tun.StandingCollider, tun.SlidingCollider, ppu)
	assert.InDelta(t, tun.SlidingCollider.Width*ppu, player.W, 1e-9)
	assert.InDelta(t, tun.SlidingCollider.Height*ppu, player.H, 1e-9)
	assert.InDelta(t, 160, player.Bottom(), 1e-9)
	assert.InDelta(t, centerX, player.X+player.W/2, 1e-9)

	ApplyProfile(player, tun.SlidingCollider, tun.StandingCollider, ppu)
	assert.InDelta(t, tun.StandingCollider.Height*ppu, player.H, 1e-9)
	assert.InDelta(t, 160, player.Bottom(), 1e-9)
	assert.InDelta(t, centerX, player.X+player.W/2, 1e-9)
}

func TestProbeFits(t *testing.T) {
	space, player := testSpace(t)
	ceiling := resolv.NewObject(60, 130, 80, 10, tags.ResolvSolid, tags.ResolvGround)
	ceiling.SetShape(resolv.NewRectangle(0, 0, 80, 10))
	space.Add(ceiling)

	tun := config.DefaultMovement()
	probe := NewProbe(player, 0.2, ppu)
	ApplyProfile(player, tun.StandingCollider, tun.SlidingCollider, ppu)

	PlaceFeet(player, 100, 160)
	require.False(t, gamemath.Overlaps(player.X, player.Y, player.W, player.H, ceiling.X, ceiling.Y, ceiling.W, ceiling.H))
	assert.False(t, probe.Fits(tun.SlidingCollider, tun.StandingCollider), "ceiling over the head")
	assert.True(t, probe.Fits(tun.SlidingCollider, tun.SlidingCollider))

	// flush with the floor only
	PlaceFeet(player, 180, 160)
	assert.True(t, probe.Fits(tun.SlidingCollider, tun.StandingCollider))

	assert.True(t, (&Probe{}).Fits(tun.SlidingCollider, tun.StandingCollider))
}
