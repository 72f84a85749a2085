package shifty

// Controller is the externally-held handle to one tween run. It shares the
// run state with the scheduling loop; once the run has completed (naturally
// or through Stop(true)) the controller is inert and its methods are no-ops.
type Controller struct {
	params *tweenParams
	state  *tweenState
}

// Stop cancels the pending tick. With gotoEnd, the run is finalized: every
// tweenable property of the current state snaps to its target value (in
// place — the state's map identity is preserved for external holders), the
// run stops animating, and the completion callback fires with the final
// state. Without gotoEnd the current state is left exactly where the last
// tick put it and the callback never fires; only a go-to-end stop counts as
// completion, so a soft-stopped run still occupies its Tweenable until
// finalized.
func (c *Controller) Stop(gotoEnd bool) {
	c.cancelTick()
	if !gotoEnd || !c.state.isAnimating {
		return
	}
	for key := range c.state.current {
		if target, ok := c.params.to[key]; ok {
			c.state.current[key] = target
		}
	}
	c.state.isAnimating = false
	c.params.callback(c.state.current)
}

// Pause cancels the pending tick and records when the run was paused. The
// run remains logically animating but produces no ticks until Resume.
// Pausing a completed or already-paused run is a no-op.
func (c *Controller) Pause() {
	if !c.state.isAnimating || c.state.isPaused {
		return
	}
	c.cancelTick()
	c.state.pausedAt = c.params.owner.clock.Now()
	c.state.isPaused = true
}

// Resume reschedules ticks for a paused run. The run's logical start moves
// forward by the time spent paused, so the interpolated position reflects
// only animated elapsed time — pause and resume are invisible in the
// output. The next tick is scheduled at the owner's configured frame
// interval. Resuming a run that is not paused (still ticking, or already
// completed) is a no-op, mirroring Pause.
func (c *Controller) Resume() {
	if !c.state.isAnimating || !c.state.isPaused {
		return
	}
	now := c.params.owner.clock.Now()
	c.params.timestamp = c.params.timestamp.Add(now.Sub(c.state.pausedAt))
	c.state.isPaused = false
	c.cancelTick()
	c.state.loopID = c.params.owner.clock.AfterFunc(c.params.owner.frameInterval(), func() {
		tick(c.params, c.state)
	})
}

// Get returns the run's current state. This is the live map the loop writes
// into, not a snapshot; holders observe new values after every tick.
func (c *Controller) Get() State {
	return c.state.current
}

func (c *Controller) cancelTick() {
	if c.state.loopID != nil {
		c.state.loopID.Stop()
		c.state.loopID = nil
	}
}
