package shifty

import (
	"math"
	"testing"
	"time"
)

func TestNaturalCompletionSnapsAndFiresOnce(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)

	callbacks := 0
	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0, "y": 0},
		To:       State{"x": 100, "y": -40},
		Duration: 500 * time.Millisecond,
		Callback: func(State) { callbacks++ },
	})

	clock.Advance(2 * time.Second)

	if got := ctrl.Get()["x"]; got != 100 {
		t.Errorf("final x = %f, want exactly 100", got)
	}
	if got := ctrl.Get()["y"]; got != -40 {
		t.Errorf("final y = %f, want exactly -40", got)
	}
	if callbacks != 1 {
		t.Errorf("callback fired %d times, want 1", callbacks)
	}
}

func TestStopGotoEndSnapsAndFires(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)

	callbacks := 0
	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: time.Second,
		Callback: func(State) { callbacks++ },
	})

	clock.Advance(100 * time.Millisecond)
	ctrl.Stop(true)

	if got := ctrl.Get()["x"]; got != 100 {
		t.Errorf("x after Stop(true) = %f, want 100", got)
	}
	if callbacks != 1 {
		t.Errorf("callback fired %d times, want 1", callbacks)
	}

	// No stray tick may run afterwards.
	clock.Advance(2 * time.Second)
	if callbacks != 1 {
		t.Errorf("callback refired after stop: %d", callbacks)
	}
}

func TestSoftStopFreezesWithoutCallback(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)
	tw.Configure(Config{FPS: 10})

	callbacks := 0
	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: time.Second,
		Callback: func(State) { callbacks++ },
	})

	clock.Advance(300 * time.Millisecond)
	frozen := ctrl.Get()["x"]
	ctrl.Stop(false)

	clock.Advance(5 * time.Second)

	if got := ctrl.Get()["x"]; got != frozen {
		t.Errorf("x moved after soft stop: %f != %f", got, frozen)
	}
	if callbacks != 0 {
		t.Errorf("callback fired %d times after soft stop, want 0", callbacks)
	}
}

func TestStopTrueAfterCompletionIsInert(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)

	callbacks := 0
	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: 100 * time.Millisecond,
		Callback: func(State) { callbacks++ },
	})

	clock.Advance(time.Second)
	ctrl.Stop(true)
	ctrl.Stop(true)

	if callbacks != 1 {
		t.Errorf("callback fired %d times, want exactly 1", callbacks)
	}
}

func TestPauseResumeTransparency(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)
	tw.Configure(Config{FPS: 5}) // 200ms frames

	callbacks := 0
	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: time.Second,
		Callback: func(State) { callbacks++ },
	})

	// Animate to elapsed 200ms, then pause for 500ms of wall-clock time.
	clock.Advance(200 * time.Millisecond)
	if got := ctrl.Get()["x"]; math.Abs(got-20) > 1e-3 {
		t.Fatalf("x at 200ms = %f, want 20", got)
	}
	ctrl.Pause()
	clock.Advance(500 * time.Millisecond)
	if got := ctrl.Get()["x"]; math.Abs(got-20) > 1e-3 {
		t.Fatalf("x moved while paused: %f", got)
	}
	ctrl.Resume()

	// Completion lands at wall-clock 1000+500 = 1500ms, not 1000ms.
	clock.Advance(799 * time.Millisecond) // wall clock 1499ms
	if callbacks != 0 {
		t.Fatal("completed before the paused time was credited back")
	}
	clock.Advance(201 * time.Millisecond)
	if callbacks != 1 {
		t.Fatalf("callback fired %d times by wall clock 1700ms, want 1", callbacks)
	}
	if got := ctrl.Get()["x"]; got != 100 {
		t.Errorf("final x = %f, want 100", got)
	}
}

func TestResumedTicksReflectAnimatedTimeOnly(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)
	tw.Configure(Config{FPS: 5})

	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: time.Second,
	})

	clock.Advance(400 * time.Millisecond) // animated 400ms, x = 40
	ctrl.Pause()
	clock.Advance(3 * time.Second)
	ctrl.Resume()
	clock.Advance(200 * time.Millisecond) // animated 600ms

	if got := ctrl.Get()["x"]; math.Abs(got-60) > 1e-3 {
		t.Errorf("x after resume = %f, want 60 (animated 600ms)", got)
	}
}

func TestResumeHonorsConfiguredFrameRate(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)
	tw.Configure(Config{FPS: 4}) // 250ms frames

	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: 10 * time.Second,
	})

	clock.Advance(250 * time.Millisecond)
	ctrl.Pause()
	clock.Advance(time.Second)
	ctrl.Resume()

	steps := 0
	tw.AddHook(HookStep, func(State) { steps++ })

	// The post-resume tick must wait a full frame interval, not fire
	// immediately.
	clock.Advance(249 * time.Millisecond)
	if steps != 0 {
		t.Fatalf("tick fired %d times within the frame interval after resume", steps)
	}
	clock.Advance(1 * time.Millisecond)
	if steps != 1 {
		t.Fatalf("steps = %d one frame after resume, want 1", steps)
	}
}

func TestPauseWhenPausedAndResumeWhenDoneAreNoOps(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)
	tw.Configure(Config{FPS: 5})

	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: 400 * time.Millisecond,
	})

	clock.Advance(200 * time.Millisecond)
	ctrl.Pause()
	firstPauseAt := clock.Now()
	clock.Advance(time.Second)
	ctrl.Pause() // second pause must not move the pause point
	ctrl.Resume()

	// Had the second Pause taken effect, a full extra second would be
	// credited back and the tween would finish a second later.
	clock.Advance(400 * time.Millisecond)
	if got := ctrl.Get()["x"]; got != 100 {
		t.Fatalf("x = %f after pause bookkeeping, want 100 (paused at %v)", got, firstPauseAt)
	}

	// Inert controller: resume after completion schedules nothing.
	ctrl.Resume()
	steps := 0
	tw.AddHook(HookStep, func(State) { steps++ })
	clock.Advance(time.Second)
	if steps != 0 {
		t.Fatalf("resumed a completed run: %d ticks", steps)
	}
}

func TestResumeOnRunningTweenIsNoOp(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)
	tw.Configure(Config{FPS: 4}) // 250ms frames

	steps := 0
	ctrl := tw.Tween(TweenConfig{
		From:     State{"x": 0},
		To:       State{"x": 100},
		Duration: time.Second,
		Step:     func(State) { steps++ },
	})

	// Resume mid-frame on a run that was never paused: the pending tick
	// must stay on its original deadline, not restart a full interval.
	clock.Advance(100 * time.Millisecond)
	ctrl.Resume()
	clock.Advance(150 * time.Millisecond)

	if steps != 1 {
		t.Fatalf("steps = %d at 250ms, want 1 (tick delayed by Resume)", steps)
	}
	if got := ctrl.Get()["x"]; math.Abs(got-25) > 1e-3 {
		t.Errorf("x at 250ms = %f, want 25 (timestamp must not shift)", got)
	}
}

func TestGetReturnsLiveState(t *testing.T) {
	clock := newFakeClock()
	tw := NewTweenableWithClock(clock)

	ctrl := tw.Tween(TweenConfig{From: State{"x": 0}, To: State{"x": 100}, Duration: 100 * time.Millisecond})

	held := ctrl.Get()
	clock.Advance(time.Second)

	if held["x"] != 100 {
		t.Fatalf("held map x = %f, want 100 (Get must return the live map)", held["x"])
	}
	held["probe"] = 1
	if ctrl.Get()["probe"] != 1 {
		t.Fatal("Get returned different maps across calls")
	}
}
