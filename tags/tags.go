package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Wall             = donburi.NewTag().SetName("Wall")
	Booster          = donburi.NewTag().SetName("Booster")
	Teleporter       = donburi.NewTag().SetName("Teleporter")
	DeadZone         = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"  // blocks movement
	ResolvGround     = "ground" // counts for the ground probe
	ResolvWall       = "wall"   // counts for the wall probe
	ResolvPlayer     = "Player"
	ResolvDeadZone   = "deadzone"
	ResolvBooster    = "booster"
	ResolvTeleporter = "teleporter"
)
