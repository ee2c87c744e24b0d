package config

// StateID identifies the presentation state derived from the controller's signals.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Sprinting
	Jump
	Fall
	WallSlide
	Dash
	Slide
	Dead
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "running",
	Sprinting: "sprinting",
	Jump:      "jump",
	Fall:      "fall",
	WallSlide: "wall_slide",
	Dash:      "dash",
	Slide:     "slide",
	Dead:      "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
