package movement

import (
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
)

// Mode is the timed behavior currently owning the body. Only one runs at a time.
type Mode int

const (
	ModeFree Mode = iota
	ModeDash
	ModeSlide
	ModeWallJump
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeDash:
		return "dash"
	case ModeSlide:
		return "slide"
	case ModeWallJump:
		return "wall_jump"
	}
	return "unknown"
}

// JumpKind tells listeners which rule produced a jump.
type JumpKind int

const (
	JumpGround JumpKind = iota
	JumpDouble
	JumpWall
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpDouble:
		return "double"
	case JumpWall:
		return "wall"
	}
	return "unknown"
}

// Body is the simulated character. Velocity is in world units per second, +y up.
type Body struct {
	Velocity     gamemath.Vec2
	Facing       float64 // -1 or 1
	GravityScale float64
	Profile      config.ColliderProfile
}

// MotionState is everything the resolver remembers between steps.
type MotionState struct {
	Grounded            bool
	Jumping             bool
	WallSliding         bool
	Sprinting           bool
	DoubleJumpAvailable bool
	JumpCutAvailable    bool

	Mode          Mode
	ModeRemaining float64 // seconds left in the active timed mode

	DashCooldown  float64
	SlideCooldown float64

	slideDirection float64
	savedGravity   float64
	standPending   bool // slide ended with no headroom, still in the sliding profile

	jumpCached   bool
	jumpCachedAt float64
	jumpReleased bool // latched until the next fixed step reads it

	lastGrounded float64
	lastJump     float64
}

// Signals is the read-only view presentation code consumes.
type Signals struct {
	Grounded        bool
	Jumping         bool
	WallSliding     bool
	Dashing         bool
	Sliding         bool
	Sprinting       bool
	HorizontalSpeed float64
	VerticalSpeed   float64
	Facing          float64
	Mode            Mode
}
