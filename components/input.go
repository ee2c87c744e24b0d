package components

import (
	"github.com/automoto/kinetic/config/controls"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// PlayerInputData stores the current and previous frame's pressed state for
// all actions. JustPressed/JustReleased are computed by comparing frames.
type PlayerInputData struct {
	Current     [controls.ActionCount]bool
	Previous    [controls.ActionCount]bool
	Stick       gamemath.Vec2 // left stick past the deadzone, +y up
	InputMethod InputMethod
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

func (d *PlayerInputData) Pressed(a controls.ActionID) bool {
	return d.Current[a]
}

func (d *PlayerInputData) JustPressed(a controls.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

func (d *PlayerInputData) JustReleased(a controls.ActionID) bool {
	return !d.Current[a] && d.Previous[a]
}
