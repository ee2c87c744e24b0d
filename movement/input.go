package movement

import (
	"github.com/automoto/kinetic/config"
	"github.com/automoto/kinetic/shared/gamemath"
)

// Snapshot is one frame of sampled input. Move is not normalized; each axis
// is in [-1, 1]. The *Pressed and JumpReleased fields are edges for this frame.
type Snapshot struct {
	Move         gamemath.Vec2
	Sprint       bool
	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
	SlidePressed bool
}

// InputSource produces the frame's input. ok is false when no device is
// available, which the controller treats as zero input.
type InputSource interface {
	Snapshot() (snap Snapshot, ok bool)
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() (Snapshot, bool)

func (f InputFunc) Snapshot() (Snapshot, bool) {
	return f()
}

// Probe answers environment queries about the body's surroundings.
type Probe interface {
	// Grounded reports whether the feet overlap the ground layer.
	Grounded() bool
	// WallAhead casts from the body's center along direction (-1 or 1)
	// and reports a wall hit within distance world units.
	WallAhead(direction, distance float64) bool
	// Fits reports whether the body could switch collision profiles where
	// it stands without overlapping solid geometry.
	Fits(from, to config.ColliderProfile) bool
}

// InputBuffer is an InputSource fed by a separate input stage, such as an
// ECS system that polls devices before the controller updates.
type InputBuffer struct {
	snap Snapshot
	ok   bool
}

// Push replaces the buffered snapshot for this frame.
func (b *InputBuffer) Push(s Snapshot) {
	b.snap, b.ok = s, true
}

// Clear drops the buffered snapshot so the next read reports no device.
func (b *InputBuffer) Clear() {
	*b = InputBuffer{}
}

func (b *InputBuffer) Snapshot() (Snapshot, bool) {
	return b.snap, b.ok
}
