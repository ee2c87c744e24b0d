package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/fonts"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider, shows the ground and wall probes and
// prints the controller state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if v.visible(obj) {
				v.outline(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Cyan)
			}
		}
	}

	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	mv := components.Movement.Get(player)
	tun := mv.Controller.Tunables()
	ppu := cfg.World.PixelsPerUnit

	// ground probe square
	r := tun.GroundCheckRadius * ppu
	v.outline(screen, obj.X+obj.W/2-r, obj.Y+obj.H-r, 2*r, 2*r, cfg.Green)

	// wall probe ray
	body := mv.Controller.Body()
	dist := tun.WallCheckDistance
	if mv.Controller.State().Mode == movement.ModeSlide {
		dist = tun.SlideWallCheckDistance
	}
	cx, cy := obj.X+obj.W/2+v.camX, obj.Y+obj.H/2+v.camY
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+body.Facing*dist*ppu), float32(cy), 1, cfg.Orange, false)

	face := fonts.HUD.Get()
	text.Draw(screen, hudText(e), face, 4, 4+face.Metrics().Ascent.Ceil(), cfg.White)
}

func hudText(e *ecs.ECS) string {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return ""
	}
	ctrl := components.Movement.Get(player).Controller
	state := components.State.Get(player)
	st := ctrl.State()
	vel := ctrl.Velocity()
	a := ctrl.Abilities()

	var b strings.Builder
	fmt.Fprintf(&b, "FPS %.0f  TPS %.0f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "state %s (%d)  mode %s\n", state.CurrentState, state.StateTimer, st.Mode)
	fmt.Fprintf(&b, "vel %.2f, %.2f\n", vel.X, vel.Y)
	fmt.Fprintf(&b, "grounded %v  wall %v  double %v\n", st.Grounded, st.WallSliding, st.DoubleJumpAvailable)
	fmt.Fprintf(&b, "dash cd %.2f  slide cd %.2f\n", st.DashCooldown, st.SlideCooldown)
	fmt.Fprintf(&b, "jumps %d  last %s\n", state.Jumps, state.LastJump)
	fmt.Fprintf(&b, "F1 double %v  F2 wall %v  F3 sprint %v  F4 dash %v  F5 slide %v\n",
		a.DoubleJump, a.WallJump, a.Sprint, a.Dash, a.Slide)
	b.WriteString("Esc pause  R respawn  F12 debug")
	return b.String()
}
