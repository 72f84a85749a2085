package shifty

// Queue sequences tween runs on a single Tweenable, starting each
// configuration as its predecessor completes. Configurations added while
// the queue is draining run after the ones already pending.
//
// Like everything else here, a Queue is cooperative and single-threaded:
// Add and Start are expected from the same goroutine discipline the ticks
// use.
type Queue struct {
	owner   *Tweenable
	pending []TweenConfig
	running bool
}

// NewQueue creates a queue that runs its tweens on t.
func NewQueue(t *Tweenable) *Queue {
	return &Queue{owner: t}
}

// Add appends cfg to the queue and returns the queue for chaining.
func (q *Queue) Add(cfg TweenConfig) *Queue {
	q.pending = append(q.pending, cfg)
	return q
}

// Len returns the number of configurations waiting to run. The currently
// animating tween, if any, is not counted.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Clear drops every pending configuration. A tween already animating is
// not affected, but nothing further will start after it completes.
func (q *Queue) Clear() {
	q.pending = nil
}

// Start begins draining the queue. It is a no-op if the queue is already
// draining or has nothing pending.
func (q *Queue) Start() {
	if q.running {
		return
	}
	q.running = true
	q.next()
}

// next pops the head configuration and starts it, chaining itself through
// the completion callback. The user's callback runs before the next tween
// starts.
func (q *Queue) next() {
	if len(q.pending) == 0 {
		q.running = false
		return
	}
	cfg := q.pending[0]
	q.pending = q.pending[1:]

	userCallback := cfg.Callback
	cfg.Callback = func(current State) {
		if userCallback != nil {
			userCallback(current)
		}
		q.next()
	}
	if q.owner.Tween(cfg) == nil {
		// Owner is busy with a run this queue doesn't control; put the
		// config back (with its own callback) and stop draining rather
		// than drop it.
		cfg.Callback = userCallback
		q.pending = append([]TweenConfig{cfg}, q.pending...)
		q.running = false
	}
}
