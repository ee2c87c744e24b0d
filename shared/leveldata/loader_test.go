package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "basic.tmx")
	require.NoError(t, err)

	assert.Equal(t, "basic", level.Name)
	assert.Equal(t, 160, level.Width)
	assert.Equal(t, 96, level.Height)
	assert.Equal(t, 16, level.TileSize)
	assert.Equal(t, Point{X: 24, Y: 80}, level.Spawn)

	t.Run("ground runs are merged per row", func(t *testing.T) {
		assert.Equal(t, []Rect{
			{X: 96, Y: 48, W: 32, H: 16},
			{X: 0, Y: 80, W: 64, H: 16},
			{X: 96, Y: 80, W: 64, H: 16},
		}, level.Ground)
	})

	t.Run("walls", func(t *testing.T) {
		require.Len(t, level.Walls, 5)
		for i, w := range level.Walls {
			assert.Equal(t, Rect{X: 144, Y: float64(i * 16), W: 16, H: 16}, w)
		}
	})

	t.Run("boosters", func(t *testing.T) {
		require.Len(t, level.Boosters, 1)
		b := level.Boosters[0]
		assert.Equal(t, Rect{X: 96, Y: 64, W: 16, H: 16}, b.Rect)
		assert.True(t, b.Override)
		assert.Equal(t, 0.0, b.VelocityX)
		assert.Equal(t, 35.0, b.VelocityY)
	})

	t.Run("teleporters", func(t *testing.T) {
		require.Len(t, level.Teleports, 2)
		a, ok := level.Teleporter(3)
		require.True(t, ok)
		assert.Equal(t, 4, a.Target)
		assert.False(t, a.ResetVelocity)

		b, ok := level.Teleporter(a.Target)
		require.True(t, ok)
		assert.Equal(t, 3, b.Target)
		assert.True(t, b.ResetVelocity)
		assert.Equal(t, Rect{X: 112, Y: 16, W: 16, H: 32}, b.Rect)

		_, ok = level.Teleporter(99)
		assert.False(t, ok)
	})

	t.Run("dead zones and platforms", func(t *testing.T) {
		assert.Equal(t, []Rect{{X: 64, Y: 80, W: 32, H: 16}}, level.DeadZones)

		require.Len(t, level.Platforms, 1)
		p := level.Platforms[0]
		assert.Equal(t, Rect{X: 16, Y: 16, W: 32, H: 8}, p.Rect)
		assert.Equal(t, 48.0, p.MoveX)
		assert.Equal(t, 0.0, p.MoveY)
		assert.Equal(t, 2.0, p.Duration)
	})
}

func TestLoadErrors(t *testing.T) {
	fsys := os.DirFS("testdata")

	_, err := Load(fsys, "nospawn.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)

	_, err = Load(fsys, "missing.tmx")
	assert.Error(t, err)
}

func TestLoadSandbox(t *testing.T) {
	levels, names, err := LoadAll(os.DirFS("../../assets"), "levels")
	require.NoError(t, err)
	require.Contains(t, names, "sandbox")

	level := levels["sandbox"]
	assert.NotEmpty(t, level.Ground)
	assert.NotEmpty(t, level.Walls)
	assert.NotEmpty(t, level.DeadZones)
	for _, tp := range level.Teleports {
		_, ok := level.Teleporter(tp.Target)
		assert.True(t, ok, "teleporter %d", tp.ID)
	}

	_, _, err = LoadAll(os.DirFS("testdata"), "nothing")
	assert.Error(t, err)
}
