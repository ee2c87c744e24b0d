package sim

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/shared/gamemath"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no frames")

// Script is a recorded or hand-written input sequence. Buttons are held
// states; presses and releases fall out of the changes between frames.
type Script struct {
	TickRate int       `yaml:"tick_rate"`
	Steps    []Segment `yaml:"steps"`
}

// Segment holds the same input for Frames frames.
type Segment struct {
	Frames int        `yaml:"frames"`
	Move   [2]float64 `yaml:"move"`
	Sprint bool       `yaml:"sprint"`
	Jump   bool       `yaml:"jump"`
	Dash   bool       `yaml:"dash"`
	Slide  bool       `yaml:"slide"`
}

// Held is one frame of held input.
type Held struct {
	Move                      gamemath.Vec2
	Sprint, Jump, Dash, Slide bool
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	s := &Script{TickRate: 60}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.TickRate <= 0 {
		return nil, fmt.Errorf("parse script: tick_rate must be positive, got %d", s.TickRate)
	}
	total := 0
	for i, seg := range s.Steps {
		if seg.Frames < 0 {
			return nil, fmt.Errorf("parse script: step %d has %d frames", i, seg.Frames)
		}
		total += seg.Frames
	}
	if total == 0 {
		return nil, ErrEmptyScript
	}
	return s, nil
}

// Frames expands the segments into one entry per frame.
func (s *Script) Frames() []Held {
	var frames []Held
	for _, seg := range s.Steps {
		h := Held{
			Move:   gamemath.Vec2{X: seg.Move[0], Y: seg.Move[1]},
			Sprint: seg.Sprint,
			Jump:   seg.Jump,
			Dash:   seg.Dash,
			Slide:  seg.Slide,
		}
		for i := 0; i < seg.Frames; i++ {
			frames = append(frames, h)
		}
	}
	return frames
}

// Edges turns two consecutive held frames into the controller's snapshot.
func Edges(prev, cur Held) movement.Snapshot {
	return movement.Snapshot{
		Move:         cur.Move,
		Sprint:       cur.Sprint,
		JumpPressed:  cur.Jump && !prev.Jump,
		JumpReleased: !cur.Jump && prev.Jump,
		DashPressed:  cur.Dash && !prev.Dash,
		SlidePressed: cur.Slide && !prev.Slide,
	}
}
