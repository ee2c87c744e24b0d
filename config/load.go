package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTunable is returned when a loaded value cannot drive the controller.
var ErrInvalidTunable = errors.New("invalid tunable")

// File is the on-disk tuning document. Missing keys keep their defaults.
type File struct {
	Movement  MovementConfig `yaml:"movement"`
	Abilities AbilityConfig  `yaml:"abilities"`
}

// Load reads a tuning file and overlays it on the default tunables and the
// default ability gates. It never touches the package globals, so the reload
// watcher may call it from its own goroutine.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tunables %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a tuning document. See Load.
func Parse(data []byte) (*File, error) {
	f := &File{
		Movement:  DefaultMovement(),
		Abilities: DefaultAbilities(),
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse tunables: %w", err)
	}
	if err := f.Movement.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate rejects values the integrator cannot work with.
func (m *MovementConfig) Validate() error {
	if m.FixedTimeStep <= 0 {
		return fmt.Errorf("%w: fixed_time_step must be positive, got %v", ErrInvalidTunable, m.FixedTimeStep)
	}
	if m.MaxFixedSteps < 0 {
		return fmt.Errorf("%w: max_fixed_steps must not be negative, got %d", ErrInvalidTunable, m.MaxFixedSteps)
	}
	if m.WalkForceApplyLimit <= 0 || m.AirForceApplyLimit <= 0 {
		return fmt.Errorf("%w: force apply limits must be positive", ErrInvalidTunable)
	}

	durations := map[string]float64{
		"grounded_tolerance_time": m.GroundedToleranceTime,
		"jump_cache_time":         m.JumpCacheTime,
		"just_jumped_window":      m.JustJumpedWindow,
		"wall_jump_time":          m.WallJumpTime,
		"dash_duration":           m.DashDuration,
		"dash_cooldown":           m.DashCooldown,
		"slide_duration":          m.SlideDuration,
		"slide_cooldown":          m.SlideCooldown,
	}
	for name, v := range durations {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTunable, name, v)
		}
	}

	for name, p := range map[string]ColliderProfile{
		"standing_collider": m.StandingCollider,
		"sliding_collider":  m.SlidingCollider,
	} {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: %s needs a positive size, got %vx%v", ErrInvalidTunable, name, p.Width, p.Height)
		}
	}
	return nil
}
