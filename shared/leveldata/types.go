// Package leveldata parses sandbox levels from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
// All positions and sizes are in pixels with +y down, as Tiled stores them.
package leveldata

// Level holds everything the sandbox needs to build a scene.
type Level struct {
	Name      string
	Ground    []Rect // stand-on blocks, also count as walls
	Walls     []Rect // wall-only blocks
	Platforms []Platform
	Boosters  []Booster
	Teleports []Teleporter
	DeadZones []Rect
	Spawn     Point
	Width     int
	Height    int
	TileSize  int
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Platform is a floating block that travels by (MoveX, MoveY) and back.
type Platform struct {
	Rect
	MoveX, MoveY float64
	Duration     float64 // seconds for one leg
}

// Booster changes the body's velocity while it is inside the area.
type Booster struct {
	Rect
	VelocityX, VelocityY float64 // world units per second, +y up
	Override             bool    // replace the velocity instead of adding to it
}

// Teleporter sends the body to the teleporter whose ID equals Target.
type Teleporter struct {
	Rect
	ID            int
	Target        int
	ResetVelocity bool
}
