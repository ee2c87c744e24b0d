package movement

import "math"

// Stepper turns variable frame time into a whole number of fixed steps.
type Stepper struct {
	Step     float64
	MaxSteps int // 0 means unlimited

	acc float64
}

// Advance adds dt to the accumulator and returns how many fixed steps to run.
// Backlog beyond MaxSteps is dropped rather than carried into later frames.
func (s *Stepper) Advance(dt float64) int {
	if s.Step <= 0 || dt <= 0 {
		return 0
	}
	s.acc += dt
	n := int(math.Floor(s.acc/s.Step + 1e-9))
	s.acc = math.Max(0, s.acc-float64(n)*s.Step)
	if s.MaxSteps > 0 && n > s.MaxSteps {
		n = s.MaxSteps
	}
	return n
}

// Alpha is the fraction of a step left in the accumulator, for interpolation.
func (s *Stepper) Alpha() float64 {
	if s.Step <= 0 {
		return 0
	}
	return s.acc / s.Step
}

func (s *Stepper) Reset() {
	s.acc = 0
}
