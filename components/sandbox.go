package components

import (
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BoosterData fires once each time the player enters the area.
type BoosterData struct {
	Velocity gamemath.Vec2 // world units per second
	Override bool
	Inside   bool
}

var Booster = donburi.NewComponentType[BoosterData]()

type TeleporterData struct {
	ID            int
	Target        int
	ResetVelocity bool
	Cooldown      float64 // seconds until it can fire again
}

var Teleporter = donburi.NewComponentType[TeleporterData]()
