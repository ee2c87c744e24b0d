package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween runs a floating platform's 0..1 progress along its path.
var Tween = donburi.NewComponentType[gween.Sequence]()

// PathData is the travel of a floating platform in pixels.
type PathData struct {
	OriginX, OriginY float64
	MoveX, MoveY     float64
}

var Path = donburi.NewComponentType[PathData]()
