package systems

import (
	"log"

	"github.com/automoto/kinetic/components"
	cfg "github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tunablesWatcher *cfg.Watcher

// WatchTunables starts hot reloading the tuning file at path.
func WatchTunables(path string) error {
	w, err := cfg.NewWatcher(path)
	if err != nil {
		return err
	}
	tunablesWatcher = w
	return nil
}

// StopTunables stops the hot reload started by WatchTunables.
func StopTunables() {
	if tunablesWatcher != nil {
		_ = tunablesWatcher.Close()
		tunablesWatcher = nil
	}
}

// UpdateTunables drains reloaded tuning files. Only the movement section is
// applied on reload; ability gates stay under the toggle keys' control.
func UpdateTunables(ecs *ecs.ECS) {
	if tunablesWatcher == nil {
		return
	}
	for {
		select {
		case f := <-tunablesWatcher.Events:
			cfg.Movement = f.Movement
			ApplyTunables(ecs, &cfg.Movement)
			log.Printf("tunables reloaded")
		case err := <-tunablesWatcher.Errors:
			log.Printf("Warning: tunables not reloaded: %v", err)
		default:
			return
		}
	}
}

// ApplyTunables pushes tun into every player's controller, stepper and probe.
func ApplyTunables(ecs *ecs.ECS, tun *cfg.MovementConfig) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		mv.Controller.SetTunables(tun)
		mv.Stepper.Step = tun.FixedTimeStep
		mv.Stepper.MaxSteps = tun.MaxFixedSteps
		mv.Probe.GroundRadius = tun.GroundCheckRadius
	})
}
