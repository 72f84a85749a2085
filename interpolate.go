package shifty

// Interpolate computes the eased state at a normalized position in [0, 1]
// with no timers involved: position 0 returns from's values, position 1
// returns the targets. The result is a fresh state; from and to are never
// mutated. Property selection follows the same rule as a running tween —
// only properties present in both from and to are interpolated, the rest
// carry over from from untouched. Unknown easing names fall back to linear.
func Interpolate(from, to State, position float64, easing string) State {
	if position < 0 {
		position = 0
	} else if position > 1 {
		position = 1
	}
	fn := LookupEasing(easing)
	out := clone(from)
	for key, start := range from {
		target, ok := to[key]
		if !ok {
			continue
		}
		out[key] = float64(fn(float32(position), float32(start), float32(target-start), 1))
	}
	return out
}
