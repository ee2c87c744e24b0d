package config

import "image/color"

// ColliderProfile describes the body's collision box in world units.
// Offset is measured from the body's center, +y up.
type ColliderProfile struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// MovementConfig contains every tunable of the character controller.
// Values are in world units and seconds.
type MovementConfig struct {
	// Ground and air drive
	WalkForce                             float64 `yaml:"walk_force"`
	SprintForce                           float64 `yaml:"sprint_force"`
	WalkForceApplyLimit                   float64 `yaml:"walk_force_apply_limit"`
	AirControl                            float64 `yaml:"air_control"`
	AirForceApplyLimit                    float64 `yaml:"air_force_apply_limit"`
	StoppingForce                         float64 `yaml:"stopping_force"`
	ApplyStoppingForceWhenActivelyBraking bool    `yaml:"apply_stopping_force_when_actively_braking"`
	DragConstant                          float64 `yaml:"drag_constant"`
	FrictionConstant                      float64 `yaml:"friction_constant"`
	VelocityCleanupThreshold              float64 `yaml:"velocity_cleanup_threshold"`
	InputDeadzone                         float64 `yaml:"input_deadzone"` // |axis| below this counts as no input

	// Gravity
	Gravity              float64 `yaml:"gravity"`
	ApplyGravityOnGround bool    `yaml:"apply_gravity_on_ground"`

	// Jump
	JumpVelocity                         float64 `yaml:"jump_velocity"`
	JumpCutVelocity                      float64 `yaml:"jump_cut_velocity"`
	MinAllowedJumpCutVelocity            float64 `yaml:"min_allowed_jump_cut_velocity"`
	GroundedToleranceTime                float64 `yaml:"grounded_tolerance_time"` // coyote time
	JumpCacheTime                        float64 `yaml:"jump_cache_time"`
	JustJumpedWindow                     float64 `yaml:"just_jumped_window"`
	DoubleJumpVelocity                   float64 `yaml:"double_jump_velocity"`
	HorizontalJumpBoostFactor            float64 `yaml:"horizontal_jump_boost_factor"`
	MaxHorizontalJumpBoost               float64 `yaml:"max_horizontal_jump_boost"`
	JumpMomentumRetention                float64 `yaml:"jump_momentum_retention"`
	ResetVerticalSpeedOnJumpIfMovingDown bool    `yaml:"reset_vertical_speed_on_jump_if_moving_down"`

	// Wall slide and wall jump
	WallSlidingSpeed  float64 `yaml:"wall_sliding_speed"`
	WallJumpXVelocity float64 `yaml:"wall_jump_x_velocity"`
	WallJumpYVelocity float64 `yaml:"wall_jump_y_velocity"`
	WallJumpTime      float64 `yaml:"wall_jump_time"`
	WallCheckDistance float64 `yaml:"wall_check_distance"` // from the body's center

	// Dash
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	// Slide
	SlideSpeed             float64 `yaml:"slide_speed"`
	SlideSpeedBoost        float64 `yaml:"slide_speed_boost"`
	SlideDuration          float64 `yaml:"slide_duration"`
	SlideCooldown          float64 `yaml:"slide_cooldown"`
	SlideSlowdownRate      float64 `yaml:"slide_slowdown_rate"`
	SlideWallCheckDistance float64 `yaml:"slide_wall_check_distance"`
	SlideCancelThreshold   float64 `yaml:"slide_cancel_threshold"`

	// Collision
	StandingCollider  ColliderProfile `yaml:"standing_collider"`
	SlidingCollider   ColliderProfile `yaml:"sliding_collider"`
	GroundCheckRadius float64         `yaml:"ground_check_radius"`

	// Simulation rate
	FixedTimeStep float64 `yaml:"fixed_time_step"`
	MaxFixedSteps int     `yaml:"max_fixed_steps"` // per frame, backlog beyond is dropped
}

// AbilityConfig holds the ability gates. Each one can be flipped at runtime.
type AbilityConfig struct {
	DoubleJump bool `yaml:"double_jump" json:"doubleJump"`
	WallJump   bool `yaml:"wall_jump" json:"wallJump"`
	Sprint     bool `yaml:"sprint" json:"sprint"`
	Dash       bool `yaml:"dash" json:"dash"`
	Slide      bool `yaml:"slide" json:"slide"`
}

// WorldConfig maps world units onto the pixel space used by collision and drawing.
type WorldConfig struct {
	PixelsPerUnit float64
	CellSize      int
}

// SandboxConfig contains the tunables of the level collaborators.
type SandboxConfig struct {
	RespawnDelayFrames int     // frames frozen in a dead zone before respawning
	TeleportCooldown   float64 // seconds before a teleporter can fire again
	BoosterForce       float64 // default booster strength when the level omits one
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed (units/s) to update look-ahead
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled      bool   // Draw collision boxes and the HUD
	TunablesPath string // YAML file watched for live tuning, empty disables
	LevelPath    string // TMX file, empty uses the embedded sandbox level
	AllAbilities bool   // Start with every ability, ignoring saved unlocks
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Abilities AbilityConfig
var World WorldConfig
var Sandbox SandboxConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// DefaultMovement returns a fresh copy of the default tunables.
func DefaultMovement() MovementConfig {
	return MovementConfig{
		WalkForce:                             90,
		SprintForce:                           120,
		WalkForceApplyLimit:                   18,
		AirControl:                            0.6,
		AirForceApplyLimit:                    15,
		StoppingForce:                         100,
		ApplyStoppingForceWhenActivelyBraking: true,
		DragConstant:                          1,
		FrictionConstant:                      2,
		VelocityCleanupThreshold:              0.01,
		InputDeadzone:                         0.01,

		Gravity:              50,
		ApplyGravityOnGround: true,

		JumpVelocity:                         32,
		JumpCutVelocity:                      10,
		MinAllowedJumpCutVelocity:            18,
		GroundedToleranceTime:                0.1,
		JumpCacheTime:                        0.1,
		JustJumpedWindow:                     0.02,
		DoubleJumpVelocity:                   30,
		HorizontalJumpBoostFactor:            0.2,
		MaxHorizontalJumpBoost:               2,
		JumpMomentumRetention:                0.8,
		ResetVerticalSpeedOnJumpIfMovingDown: true,

		WallSlidingSpeed:  2,
		WallJumpXVelocity: 15,
		WallJumpYVelocity: 18,
		WallJumpTime:      0.15,
		WallCheckDistance: 0.5,

		DashSpeed:    25,
		DashDuration: 0.15,
		DashCooldown: 1,

		SlideSpeed:             20,
		SlideSpeedBoost:        1.5,
		SlideDuration:          1,
		SlideCooldown:          0.5,
		SlideSlowdownRate:      4,
		SlideWallCheckDistance: 0.9, // just past the sliding collider's half width
		SlideCancelThreshold:   0.5,

		StandingCollider:  ColliderProfile{Width: 0.8, Height: 1.8},
		SlidingCollider:   ColliderProfile{Width: 1.6, Height: 0.9, OffsetY: -0.45},
		GroundCheckRadius: 0.2,

		FixedTimeStep: 0.02,
		MaxFixedSteps: 5,
	}
}

// DefaultAbilities is the basic moveset, the rest is unlocked in play.
func DefaultAbilities() AbilityConfig {
	return AbilityConfig{Sprint: true}
}

// AllAbilities returns a gate set with every ability unlocked.
func AllAbilities() AbilityConfig {
	return AbilityConfig{DoubleJump: true, WallJump: true, Sprint: true, Dash: true, Slide: true}
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Movement = DefaultMovement()

	Abilities = DefaultAbilities()

	World = WorldConfig{
		PixelsPerUnit: 16,
		CellSize:      16,
	}

	Sandbox = SandboxConfig{
		RespawnDelayFrames: 45, // ~0.75s at 60fps
		TeleportCooldown:   2,
		BoosterForce:       30,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 1,
	}
}
