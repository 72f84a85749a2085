package shifty

// FilterFunc observes or rewrites tween state at a lifecycle point. It
// receives the live current state, the immutable start snapshot, and the
// target mapping.
type FilterFunc func(current, original, to State)

// Filter bundles the lifecycle callbacks of one filter group. Any field may
// be nil; nil callbacks are skipped.
type Filter struct {
	// TweenCreated fires once per tween, right after the start snapshot is
	// captured and before the first tick is scheduled.
	TweenCreated FilterFunc
	// BeforeTween fires on every tick, before the interpolation step.
	BeforeTween FilterFunc
	// AfterTween fires on every tick, after the interpolation step.
	AfterTween FilterFunc
}

type filterEntry struct {
	name   string
	filter Filter
}

// The filter registry is process-wide: every registered group applies to
// every tween of every Tweenable, in registration order. There is no
// per-instance opt-out. Register during setup, before tweens run.
var filters []filterEntry

// RegisterFilter adds (or replaces) the filter group with the given name.
// Replacing keeps the group's original position in the apply order.
func RegisterFilter(name string, f Filter) {
	for i, e := range filters {
		if e.name == name {
			filters[i].filter = f
			return
		}
	}
	filters = append(filters, filterEntry{name: name, filter: f})
}

// UnregisterFilter removes the named filter group. Unknown names are a no-op.
func UnregisterFilter(name string) {
	for i, e := range filters {
		if e.name == name {
			filters = append(filters[:i], filters[i+1:]...)
			return
		}
	}
}

// ResetFilters clears the whole registry. Intended for tests.
func ResetFilters() {
	filters = nil
}

type filterStage int

const (
	filterTweenCreated filterStage = iota
	filterBeforeTween
	filterAfterTween
)

// applyFilters runs one lifecycle stage of every registered group against
// the given tween state, in registration order.
func applyFilters(stage filterStage, current, original, to State) {
	for _, e := range filters {
		var fn FilterFunc
		switch stage {
		case filterTweenCreated:
			fn = e.filter.TweenCreated
		case filterBeforeTween:
			fn = e.filter.BeforeTween
		case filterAfterTween:
			fn = e.filter.AfterTween
		}
		if fn != nil {
			fn(current, original, to)
		}
	}
}
