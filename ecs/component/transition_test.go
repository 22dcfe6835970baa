package component

import "testing"

func TestLevelTransitionSingleFlight(t *testing.T) {
	var lt LevelTransition

	if !lt.Request(0, 1) {
		t.Fatal("idle sequencer should accept a request")
	}
	if lt.Request(0, 2) {
		t.Fatal("second request while Requested must be dropped")
	}
	if lt.Target != 1 || lt.Last != 0 {
		t.Fatalf("pending target changed: target=%d last=%d", lt.Target, lt.Last)
	}

	lt.LevelLoaded()
	if lt.Request(1, 0) {
		t.Fatal("request while Loaded must be dropped")
	}
	if lt.Target != 1 {
		t.Fatalf("target changed while Loaded: %d", lt.Target)
	}
	if lt.Teleport != TeleportPending || lt.TeleportFrom != 0 {
		t.Fatalf("expected Pending(0), got %v(%d)", lt.Teleport, lt.TeleportFrom)
	}
}

func TestStepFadeMonotonic(t *testing.T) {
	lt := LevelTransition{FadeSpeed: DefaultFadeSpeed}
	lt.Request(0, 1)

	const dt = 1.0 / 60
	covered := 0
	prev := lt.Alpha
	for i := 0; i < 120 && lt.State == TransitionRequested; i++ {
		if lt.StepFade(dt) {
			covered++
			lt.LevelLoaded()
			break
		}
		if lt.Alpha < prev {
			t.Fatalf("alpha decreased while Requested: %v -> %v", prev, lt.Alpha)
		}
		prev = lt.Alpha
	}
	if covered != 1 || lt.Alpha != 1 {
		t.Fatalf("expected one covered signal at alpha 1, got %d at %v", covered, lt.Alpha)
	}

	prev = lt.Alpha
	for i := 0; i < 120 && lt.State == TransitionLoaded; i++ {
		if lt.StepFade(dt) {
			t.Fatal("fade-in must not signal covered")
		}
		if lt.Alpha > prev {
			t.Fatalf("alpha increased while Loaded: %v -> %v", prev, lt.Alpha)
		}
		prev = lt.Alpha
	}
	if lt.State != TransitionIdle || lt.Alpha != 0 {
		t.Fatalf("expected Idle at alpha 0, got %v at %v", lt.State, lt.Alpha)
	}
}

func TestStepFadeCoveredOnce(t *testing.T) {
	lt := LevelTransition{FadeSpeed: 100}
	lt.Request(0, 1)
	if !lt.StepFade(1) {
		t.Fatal("expected covered on first large step")
	}
	for i := 0; i < 3; i++ {
		if lt.StepFade(1) {
			t.Fatal("covered must only be reported once")
		}
	}
}

func TestStepFadeIdleIsNoop(t *testing.T) {
	lt := LevelTransition{}
	if lt.StepFade(1) || lt.Alpha != 0 || lt.State != TransitionIdle {
		t.Fatalf("idle fade changed state: %+v", lt)
	}
}
