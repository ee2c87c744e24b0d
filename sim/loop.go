package sim

import (
	"context"
	"log"
	"math"
	"time"
)

// Sample is the body after one frame.
type Sample struct {
	Frame       int
	X, Y        float64 // feet, pixels
	VX, VY      float64 // world units per second
	Grounded    bool
	WallSliding bool
	Mode        string
	DoubleJump  bool
	Deaths      int
}

// Loop plays a script through a runner, optionally paced at the script's
// tick rate.
type Loop struct {
	runner   *Runner
	script   *Script
	realtime bool
}

func NewLoop(runner *Runner, script *Script, realtime bool) *Loop {
	return &Loop{runner: runner, script: script, realtime: realtime}
}

// Run steps every frame of the script and hands each sample to out. It stops
// early when ctx is cancelled.
func (l *Loop) Run(ctx context.Context, out func(Sample)) error {
	dt := 1 / float64(l.script.TickRate)
	frames := l.script.Frames()

	var tick <-chan time.Time
	if l.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(l.script.TickRate))
		defer ticker.Stop()
		tick = ticker.C
		log.Printf("Sim loop started at %d ticks/second", l.script.TickRate)
	}

	var prev Held
	for _, cur := range frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		l.runner.Step(Edges(prev, cur), dt)
		prev = cur
		out(l.runner.Sample())
	}
	return nil
}

// Sample captures the runner's current state.
func (r *Runner) Sample() Sample {
	x, y := r.Feet()
	v := r.Controller.Velocity()
	st := r.Controller.State()
	return Sample{
		Frame:       r.Frame,
		X:           round(x),
		Y:           round(y),
		VX:          round(v.X),
		VY:          round(v.Y),
		Grounded:    st.Grounded,
		WallSliding: st.WallSliding,
		Mode:        st.Mode.String(),
		DoubleJump:  st.DoubleJumpAvailable,
		Deaths:      r.Deaths,
	}
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
