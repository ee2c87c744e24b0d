package systems

import (
	"image/color"

	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// view converts world pixels to screen pixels for the current camera.
type view struct {
	camX, camY float64
	x, y, w, h float64 // visible world rect
}

func cameraView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		camX: width/2 - camera.Position.X,
		camY: height/2 - camera.Position.Y,
		x:    camera.Position.X - width/2,
		y:    camera.Position.Y - height/2,
		w:    width,
		h:    height,
	}, true
}

func (v view) visible(obj *resolv.Object) bool {
	return obj.X+obj.W >= v.x && obj.X <= v.x+v.w && obj.Y+obj.H >= v.y && obj.Y <= v.y+v.h
}

func (v view) fill(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(obj.X+v.camX), float32(obj.Y+v.camY), float32(obj.W), float32(obj.H), c, false)
}

func (v view) outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	x, y = x+v.camX, y+v.camY
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

// DrawLevel draws every collider as a flat block. The sandbox has no sprites.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}

	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if !v.visible(obj) {
			continue
		}
		v.fill(screen, obj, colliderColor(obj))
	}
}

// DrawPlayer draws the player tinted by its presentation state.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	state := components.State.Get(player)
	v.fill(screen, obj.Object, stateColor(state.CurrentState))
}

func colliderColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvDeadZone):
		return cfg.Red
	case obj.HasTags(tags.ResolvBooster):
		return cfg.Orange
	case obj.HasTags(tags.ResolvTeleporter):
		return cfg.Purple
	case obj.HasTags(tags.ResolvGround):
		return cfg.Grey
	case obj.HasTags(tags.ResolvWall):
		return color.RGBA{R: 70, G: 70, B: 90, A: 255}
	}
	return color.Transparent
}

var stateColors = map[cfg.StateID]color.Color{
	cfg.Idle:      cfg.White,
	cfg.Running:   cfg.Green,
	cfg.Sprinting: cfg.Cyan,
	cfg.Jump:      cfg.Blue,
	cfg.Fall:      color.RGBA{R: 0, G: 60, B: 160, A: 255},
	cfg.WallSlide: cfg.Purple,
	cfg.Dash:      cfg.Orange,
	cfg.Slide:     color.RGBA{R: 255, G: 220, B: 0, A: 255},
	cfg.Dead:      cfg.Red,
}

func stateColor(s cfg.StateID) color.Color {
	if c, ok := stateColors[s]; ok {
		return c
	}
	return cfg.White
}
