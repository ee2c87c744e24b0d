package sim

import (
	"context"
	"testing"

	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dt    = 1.0 / 60
	floor = 256.0
)

var (
	right = movement.Snapshot{Move: gamemath.Vec2{X: 1}}
	idle  = movement.Snapshot{}
)

// testLevel is a flat floor at y=256 closed by a wall at x=400, with a low
// ceiling between x=200 and x=360 that only a sliding body fits under.
func testLevel(spawnX float64) *leveldata.Level {
	return &leveldata.Level{
		Name:   "test",
		Width:  640,
		Height: 320,
		Ground: []leveldata.Rect{
			{X: 0, Y: floor, W: 640, H: 32},
			{X: 200, Y: 216, W: 160, H: 20},
		},
		Walls: []leveldata.Rect{{X: 400, Y: 0, W: 16, H: floor}},
		Spawn: leveldata.Point{X: spawnX, Y: floor - 40},
	}
}

func newRunner(t *testing.T, level *leveldata.Level) *Runner {
	t.Helper()
	tun := config.DefaultMovement()
	world := config.WorldConfig{PixelsPerUnit: 16, CellSize: 16}
	r := New(level, &tun, config.AllAbilities(), world)
	require.NotNil(t, r.Object)
	return r
}

func run(r *Runner, snap movement.Snapshot, frames int) {
	for i := 0; i < frames; i++ {
		r.Step(snap, dt)
	}
}

func TestRunnerLands(t *testing.T) {
	r := newRunner(t, testLevel(64))
	assert.False(t, r.Controller.State().Grounded)

	run(r, idle, 90)

	_, y := r.Feet()
	assert.InDelta(t, floor, y, 0.01)
	assert.True(t, r.Controller.State().Grounded)
	assert.Equal(t, 0.0, r.Controller.Velocity().Y)
	assert.Equal(t, 90, r.Frame)
}

func TestRunnerStopsAtWall(t *testing.T) {
	r := newRunner(t, testLevel(370))
	run(r, idle, 60)
	run(r, right, 300)

	assert.InDelta(t, 400, r.Object.X+r.Object.W, 0.01)
	assert.Equal(t, 0.0, r.Controller.Velocity().X)
}

func TestRunnerJumps(t *testing.T) {
	r := newRunner(t, testLevel(64))
	run(r, idle, 60)
	require.True(t, r.Controller.State().Grounded)

	r.Step(movement.Snapshot{JumpPressed: true}, dt)
	highest := floor
	for i := 0; i < 200; i++ {
		r.Step(idle, dt)
		if _, y := r.Feet(); y < highest {
			highest = y
		}
	}

	assert.Less(t, highest, floor-24, "jump should clear a tile and a half")
	_, y := r.Feet()
	assert.InDelta(t, floor, y, 0.01)
	assert.True(t, r.Controller.State().Grounded)
}

func TestRunnerSlidesUnderCeiling(t *testing.T) {
	r := newRunner(t, testLevel(150))
	run(r, idle, 60)
	tun := r.Controller.Tunables()

	r.Step(movement.Snapshot{SlidePressed: true}, dt)
	require.Equal(t, movement.ModeSlide, r.Controller.State().Mode)
	assert.InDelta(t, tun.SlidingCollider.Height*16, r.Object.H, 1e-9)

	run(r, idle, 20)

	x, y := r.Feet()
	assert.Greater(t, x, 220.0, "slide should carry under the ceiling")
	assert.InDelta(t, floor, y, 0.01)
	assert.Equal(t, movement.ModeSlide, r.Controller.State().Mode)
}

func TestRunnerStaysCrouchedWhenSlideEndsUnderCeiling(t *testing.T) {
	const ceilingBottom = 236.0
	level := &leveldata.Level{
		Name:   "tunnel",
		Width:  1200,
		Height: 320,
		Ground: []leveldata.Rect{
			{X: 0, Y: floor, W: 1200, H: 32},
			{X: 200, Y: 216, W: 600, H: ceilingBottom - 216},
		},
		Spawn: leveldata.Point{X: 150, Y: floor - 40},
	}
	r := newRunner(t, level)
	run(r, idle, 60)
	tun := r.Controller.Tunables()

	r.Step(movement.Snapshot{SlidePressed: true}, dt)
	require.Equal(t, movement.ModeSlide, r.Controller.State().Mode)
	run(r, idle, 90)

	require.Equal(t, movement.ModeFree, r.Controller.State().Mode)
	x, y := r.Feet()
	require.Greater(t, x, 220.0, "slide should end under the ceiling")
	assert.InDelta(t, floor, y, 0.01)
	assert.InDelta(t, tun.SlidingCollider.Height*16, r.Object.H, 1e-9, "no headroom to stand")

	r.Step(movement.Snapshot{JumpPressed: true}, dt)
	for i := 0; i < 60; i++ {
		r.Step(idle, dt)
		assert.GreaterOrEqual(t, r.Object.Y, ceilingBottom-0.01, "collider entered the ceiling")
	}
	_, y = r.Feet()
	assert.InDelta(t, floor, y, 0.01)
	assert.True(t, r.Controller.State().Grounded)

	// walking out from under the ceiling stands the body back up
	run(r, right, 300)
	assert.InDelta(t, tun.StandingCollider.Height*16, r.Object.H, 1e-9)
	_, y = r.Feet()
	assert.InDelta(t, floor, y, 0.01)
}

func TestRunnerRespawnsFromDeadZone(t *testing.T) {
	level := testLevel(64)
	level.DeadZones = []leveldata.Rect{{X: 120, Y: floor - 32, W: 32, H: 32}}
	r := newRunner(t, level)
	run(r, idle, 60)

	for i := 0; i < 300 && r.Deaths == 0; i++ {
		r.Step(right, dt)
	}
	require.Equal(t, 1, r.Deaths)

	x, y := r.Feet()
	assert.InDelta(t, 64, x, 1e-9)
	assert.InDelta(t, floor-40, y, 1e-9)
	assert.True(t, r.Controller.Velocity().IsZero())
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
steps:
  - frames: 2
    move: [1, 0]
  - frames: 1
    move: [1, 0]
    jump: true
    sprint: true
  - frames: 1
`))
	require.NoError(t, err)
	assert.Equal(t, 60, s.TickRate)

	frames := s.Frames()
	require.Len(t, frames, 4)
	assert.Equal(t, gamemath.Vec2{X: 1}, frames[0].Move)

	press := Edges(frames[1], frames[2])
	assert.True(t, press.JumpPressed)
	assert.True(t, press.Sprint)
	assert.False(t, press.JumpReleased)

	held := Edges(frames[2], frames[2])
	assert.False(t, held.JumpPressed)

	release := Edges(frames[2], frames[3])
	assert.True(t, release.JumpReleased)
	assert.True(t, release.Move.IsZero())
}

func TestParseScriptErrors(t *testing.T) {
	_, err := ParseScript([]byte("steps: []"))
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = ParseScript([]byte("tick_rate: 0\nsteps: [{frames: 1}]"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("steps: [{frames: -1}]"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("steps: {"))
	assert.Error(t, err)

	_, err = LoadScript("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoopRun(t *testing.T) {
	script := &Script{TickRate: 60, Steps: []Segment{
		{Frames: 30},
		{Frames: 30, Move: [2]float64{1, 0}},
	}}
	r := newRunner(t, testLevel(64))

	var samples []Sample
	err := NewLoop(r, script, false).Run(context.Background(), func(s Sample) {
		samples = append(samples, s)
	})
	require.NoError(t, err)
	require.Len(t, samples, 60)
	assert.Equal(t, 1, samples[0].Frame)
	assert.Equal(t, 60, samples[59].Frame)
	assert.Greater(t, samples[59].X, 64.0)
	assert.Equal(t, "free", samples[59].Mode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewLoop(r, script, true).Run(ctx, func(Sample) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadScript(t *testing.T) {
	s, err := LoadScript("testdata/run_jump.yaml")
	require.NoError(t, err)
	assert.Equal(t, 60, s.TickRate)
	assert.Len(t, s.Frames(), 200)

	r := newRunner(t, testLevel(64))
	jumps := 0
	r.Controller.Hooks.Jumped = func(movement.JumpKind) { jumps++ }
	require.NoError(t, NewLoop(r, s, false).Run(context.Background(), func(Sample) {}))
	assert.Equal(t, 1, jumps)
	assert.Equal(t, 200, r.Frame)
}
