package systems

import (
	"github.com/automoto/kinetic/components"
	"github.com/automoto/kinetic/config/controls"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the sandbox settings, creating them on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Settings))
	}
	entry, _ := components.Settings.First(e.World)
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug view.
func UpdateSettings(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	if components.PlayerInput.Get(player).JustPressed(controls.ActionToggleDebug) {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
}
