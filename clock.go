package shifty

import "time"

// Timer is a scheduled callback that can be canceled before it fires.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing.
	Stop() bool
}

// Clock schedules tween ticks and supplies the current time. The engine
// never touches the stdlib timer functions directly, so tests can drive a
// tween through a fake clock without real delays.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}

// SystemClock is the default Clock, backed by the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

func (systemClock) Now() time.Time {
	return time.Now()
}
