package factory

import (
	"github.com/automoto/kinetic/archetypes"
	"github.com/automoto/kinetic/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera on (x, y) so the first frame doesn't pan in.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
}

func CreateSettings(ecs *ecs.ECS, debug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{Debug: debug})
	return settings
}
