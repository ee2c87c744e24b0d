package components

import (
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/physics"
	"github.com/yohamta/donburi"
)

// MovementData ties a character controller to its collider.
type MovementData struct {
	Controller *movement.Controller
	Stepper    movement.Stepper
	Probe      *physics.Probe
	Input      *movement.InputBuffer
}

var Movement = donburi.NewComponentType[MovementData]()
