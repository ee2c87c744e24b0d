package components

import (
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/movement"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // frames spent in CurrentState
	Jumps         int
	LastJump      movement.JumpKind
}

var State = donburi.NewComponentType[StateData]()
