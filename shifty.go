package shifty

import "time"

// State is a flat mapping of property names to numeric values. Tweens
// interpolate every property of the start state that also appears in the
// target state; everything else is left alone.
type State map[string]float64

// clone returns a by-value copy of s. A nil state clones to an empty one.
func clone(s State) State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Engine defaults, used for every Config field left at its zero value.
const (
	DefaultFPS      = 30
	DefaultEasing   = "linear"
	DefaultDuration = 500 * time.Millisecond
)

// Config carries a Tweenable's default settings. Zero-valued fields keep
// the instance's current settings when passed to Configure.
type Config struct {
	FPS      int
	Easing   string
	Duration time.Duration
}

// TweenConfig describes one tween run. From is snapshotted at creation; a
// nil From starts from an empty state, which means nothing interpolates.
// Zero-valued Duration and Easing fall back to the instance defaults, and
// nil Step/Callback are replaced with no-ops.
type TweenConfig struct {
	From     State
	To       State
	Duration time.Duration
	Easing   string
	Step     func(State)
	Callback func(State)
}

// Tweenable runs timed transitions of numeric property states. Each
// instance owns its default settings and its hook lists, and animates at
// most one tween at a time.
//
// A Tweenable is single-threaded by design: ticks and controller calls are
// expected to run cooperatively, never concurrently. When driven by
// SystemClock, ticks fire on timer goroutines, so external controller calls
// should happen from the same goroutine discipline the ticks use.
type Tweenable struct {
	clock    Clock
	fps      int
	easing   string
	duration time.Duration
	hooks    map[string][]HookFunc

	params *tweenParams
	state  *tweenState
}

// NewTweenable creates a Tweenable driven by the system clock.
func NewTweenable() *Tweenable {
	return NewTweenableWithClock(SystemClock)
}

// NewTweenableWithClock creates a Tweenable driven by the given clock.
// Tests use this to step tweens deterministically through a fake clock.
func NewTweenableWithClock(clock Clock) *Tweenable {
	return &Tweenable{
		clock:    clock,
		fps:      DefaultFPS,
		easing:   DefaultEasing,
		duration: DefaultDuration,
		hooks:    make(map[string][]HookFunc),
	}
}

// Configure overrides the instance defaults with every non-zero field of c.
func (t *Tweenable) Configure(c Config) {
	if c.FPS > 0 {
		t.fps = c.FPS
	}
	if c.Easing != "" {
		t.easing = c.Easing
	}
	if c.Duration > 0 {
		t.duration = c.Duration
	}
}

// frameInterval is the delay between scheduled ticks.
func (t *Tweenable) frameInterval() time.Duration {
	return time.Second / time.Duration(t.fps)
}

// Tween starts a new run described by cfg and returns its controller.
//
// If the instance is already animating a tween, the call is a no-op and
// returns nil; the in-flight run is untouched. The returned controller's
// Get exposes the live current state, whose map identity stays stable for
// the whole run.
func (t *Tweenable) Tween(cfg TweenConfig) *Controller {
	if t.state != nil && t.state.isAnimating {
		return nil
	}

	duration := cfg.Duration
	if duration <= 0 {
		duration = t.duration
	}
	easing := cfg.Easing
	if easing == "" {
		easing = t.easing
	}
	step := cfg.Step
	if step == nil {
		step = func(State) {}
	}
	callback := cfg.Callback
	if callback == nil {
		callback = func(State) {}
	}

	current := clone(cfg.From)
	params := &tweenParams{
		owner:     t,
		to:        clone(cfg.To),
		original:  clone(current),
		duration:  duration,
		timestamp: t.clock.Now(),
		easing:    LookupEasing(easing),
		step:      step,
		callback:  callback,
	}
	state := &tweenState{current: current}

	applyFilters(filterTweenCreated, current, params.original, params.to)

	ctrl := &Controller{params: params, state: state}
	params.controller = ctrl
	t.params, t.state = params, state

	state.isAnimating = true
	state.loopID = t.clock.AfterFunc(t.frameInterval(), func() {
		tick(params, state)
	})
	return ctrl
}

// TweenValues is the positional shorthand for Tween. An empty easing name
// selects the instance default, and callback may be nil.
func (t *Tweenable) TweenValues(from, to State, duration time.Duration, callback func(State), easing string) *Controller {
	return t.Tween(TweenConfig{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
		Callback: callback,
	})
}
