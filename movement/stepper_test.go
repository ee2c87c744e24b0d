package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepperAdvance(t *testing.T) {
	t.Run("sixty frames at 50Hz", func(t *testing.T) {
		s := &Stepper{Step: 0.02}
		total := 0
		for i := 0; i < 60; i++ {
			total += s.Advance(1.0 / 60)
		}
		assert.InDelta(t, 50, total, 1)
	})

	t.Run("exact multiples", func(t *testing.T) {
		s := &Stepper{Step: 0.02}
		assert.Equal(t, 1, s.Advance(0.02))
		assert.Equal(t, 3, s.Advance(0.06))
		assert.InDelta(t, 0, s.Alpha(), 1e-6)
	})

	t.Run("backlog beyond max steps is dropped", func(t *testing.T) {
		s := &Stepper{Step: 0.02, MaxSteps: 5}
		assert.Equal(t, 5, s.Advance(1))
		assert.Less(t, s.Alpha(), 1.0)
		assert.Equal(t, 0, s.Advance(0.001))
	})

	t.Run("invalid input", func(t *testing.T) {
		s := &Stepper{}
		assert.Equal(t, 0, s.Advance(1))
		assert.Equal(t, 0.0, s.Alpha())

		s = &Stepper{Step: 0.02}
		assert.Equal(t, 0, s.Advance(-1))
	})

	t.Run("reset clears the remainder", func(t *testing.T) {
		s := &Stepper{Step: 0.02}
		s.Advance(0.03)
		s.Reset()
		assert.Equal(t, 0.0, s.Alpha())
	})
}
