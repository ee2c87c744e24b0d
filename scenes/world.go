package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/config/controls"
	"github.com/automoto/kinetic/shared/leveldata"
	"github.com/automoto/kinetic/systems"
	"github.com/automoto/kinetic/systems/factory"
	"github.com/automoto/kinetic/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene is a single level with the player and every level collaborator.
type SandboxScene struct {
	ecs     *ecs.ECS
	level   *leveldata.Level
	player  *donburi.Entry
	pauseUI *ui.PauseUI
	paused  bool
	once    sync.Once
}

func NewSandboxScene(level *leveldata.Level) *SandboxScene {
	return &SandboxScene{level: level}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)

	if systems.ActionJustPressed(controls.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		s.pauseUI.Update()
		return
	}
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)

	if s.paused {
		s.pauseUI.UI.Draw(screen)
	}
}

// ECS exposes the scene's world, configuring it on first use.
func (s *SandboxScene) ECS() *ecs.ECS {
	s.once.Do(s.configure)
	return s.ecs
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and live settings first so every later system sees this frame's edges.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTunables)
	ecs.AddSystem(systems.UpdateAbilities)

	// Death before movement so a frozen player is skipped this frame.
	ecs.AddSystem(systems.UpdateDeadZones)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateBoosters)
	ecs.AddSystem(systems.UpdateTeleporters)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)

	s.ecs = ecs

	settings := factory.CreateSettings(ecs, cfg.Debug.Enabled)
	s.player = factory.CreateLevel(ecs, s.level)
	ctrl := components.Movement.Get(s.player).Controller

	if !cfg.Debug.AllAbilities {
		if saved := systems.LoadAbilities(); saved != nil {
			ctrl.SetAbilities(*saved)
		}
	}

	s.pauseUI = ui.NewPauseUI(
		ctrl,
		components.Settings.Get(settings),
		s.level.Name,
		func() { s.paused = false },
		s.respawn,
	)
}

// respawn ends a death sequence early and puts the player on its spawn.
func (s *SandboxScene) respawn() {
	if s.player.HasComponent(components.Death) {
		s.player.RemoveComponent(components.Death)
	}
	systems.Respawn(s.player)
}
