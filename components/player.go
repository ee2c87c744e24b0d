package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64 // feet position in pixels
}

var Player = donburi.NewComponentType[PlayerData]()
