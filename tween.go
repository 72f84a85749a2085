package shifty

import (
	"time"

	"github.com/tanema/gween/ease"
)

// tweenParams holds the fixed inputs of one tween run. Only timestamp ever
// changes after creation: Resume shifts it forward by the paused duration.
type tweenParams struct {
	owner      *Tweenable
	to         State
	original   State
	duration   time.Duration
	timestamp  time.Time
	easing     ease.TweenFunc
	step       func(State)
	callback   func(State)
	controller *Controller
}

// tweenState is the mutable run state shared between the scheduling loop
// and the controller.
type tweenState struct {
	current     State
	isAnimating bool
	isPaused    bool
	pausedAt    time.Time
	loopID      Timer
}

// tick is one pass of the scheduling loop. While the run has wall-clock
// time left and is still animating, it applies the before filters, the
// interpolation step, the after filters, the step hooks, and the run's step
// callback, then reschedules itself. Once the duration has elapsed (or the
// animating flag was cleared) it finalizes through Stop(true).
//
// Termination compares absolute elapsed time against the logical timestamp
// rather than counting ticks, so scheduling drift can only affect
// smoothness, never the final value.
func tick(p *tweenParams, s *tweenState) {
	now := p.owner.clock.Now()
	if now.Before(p.timestamp.Add(p.duration)) && s.isAnimating {
		applyFilters(filterBeforeTween, s.current, p.original, p.to)
		interpolate(s.current, p, now.Sub(p.timestamp))
		applyFilters(filterAfterTween, s.current, p.original, p.to)
		p.owner.fireHooks(HookStep, s.current)
		p.step(s.current)
		s.loopID = p.owner.clock.AfterFunc(p.owner.frameInterval(), func() {
			tick(p, s)
		})
	} else {
		p.controller.Stop(true)
	}
}

// interpolate writes the eased value of every tweenable property into
// current, in place. A property is tweenable when it appears in both the
// start snapshot and the target; the seed of tweenable properties is fixed
// at run creation, so targets without a start value never spring into
// existence mid-run.
func interpolate(current State, p *tweenParams, elapsed time.Duration) {
	t := float32(elapsed.Seconds())
	d := float32(p.duration.Seconds())
	for key := range current {
		target, ok := p.to[key]
		if !ok {
			continue
		}
		b := float32(p.original[key])
		c := float32(target) - b
		current[key] = float64(p.easing(t, b, c, d))
	}
}
