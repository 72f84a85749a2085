package shifty

import "reflect"

// HookFunc is a per-instance lifecycle callback. It receives the tween's
// live current state.
type HookFunc func(State)

// HookStep is the hook event fired on every tick, after the filters and the
// interpolation step and before the run's own step callback.
const HookStep = "step"

// AddHook appends fn to the named hook list, creating the list if needed.
// Hooks fire in the order they were added.
func (t *Tweenable) AddHook(name string, fn HookFunc) {
	t.hooks[name] = append(t.hooks[name], fn)
}

// RemoveHook removes the first entry of the named hook list that matches fn
// by function identity. A nil fn clears the entire list. Removing a hook
// that was never added is a no-op.
func (t *Tweenable) RemoveHook(name string, fn HookFunc) {
	if fn == nil {
		delete(t.hooks, name)
		return
	}
	list := t.hooks[name]
	target := reflect.ValueOf(fn).Pointer()
	for i, h := range list {
		if reflect.ValueOf(h).Pointer() == target {
			t.hooks[name] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// fireHooks invokes every callback in the named hook list with current.
func (t *Tweenable) fireHooks(name string, current State) {
	for _, fn := range t.hooks[name] {
		fn(current)
	}
}
