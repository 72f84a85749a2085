// Package shifty is a timer-driven tweening engine for numeric property
// states.
//
// A tween interpolates a flat map of named float64 properties from a start
// snapshot toward a target mapping over a fixed duration, shaped by a named
// easing curve, on a repeating tick driven by an injectable clock.
//
// # Quick start
//
//	t := shifty.NewTweenable()
//	ctrl := t.Tween(shifty.TweenConfig{
//		From:     shifty.State{"x": 0},
//		To:       shifty.State{"x": 100},
//		Duration: time.Second,
//		Easing:   "outBounce",
//		Step:     func(s shifty.State) { fmt.Println(s["x"]) },
//		Callback: func(s shifty.State) { fmt.Println("done") },
//	})
//
// The returned [Controller] pauses, resumes, and stops the run, and Get
// exposes the live current state. Each [Tweenable] animates at most one
// tween at a time; starting a second while one is animating returns nil.
//
// # Easing
//
// Easing curves follow the [gween] contract (elapsed, start, delta,
// duration). The registry ships with the gween curve set plus the square
// family from [fogleman/ease]; [RegisterEasing] adds custom curves and
// [FromUnit] adapts normalized unit curves. Unknown names fall back to
// linear.
//
// # Filters and hooks
//
// Process-wide [Filter] groups observe every tween of every instance at
// creation and around each tick's interpolation. Per-instance hooks
// ([Tweenable.AddHook] with [HookStep]) observe ticks of one instance.
//
// # Beyond single tweens
//
// [Interpolate] computes an eased state at a normalized position without
// timers, [Queue] sequences tweens back-to-back on one instance, and
// [HexState]/[StateHex] let colors tween as channel states.
//
// [gween]: https://github.com/tanema/gween
// [fogleman/ease]: https://github.com/fogleman/ease
package shifty
