package system

import (
	"errors"
	"testing"

	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

func TestTransitionSingleFlight(t *testing.T) {
	tw := newTestWorld(t)
	first := &emitter{events: []any{
		component.EventStartTransition{From: 0, To: 1},
		component.EventStartTransition{From: 0, To: 2},
	}}
	ecs.NewScheduler(first, NewTransitionSystem()).Update(tw.w)

	tr := tw.transition(t)
	if tr.State != component.TransitionRequested || tr.Target != 1 || tr.Last != 0 {
		t.Fatalf("after first tick: %+v", *tr)
	}
	if tw.gameState(t).State != component.GameLoading {
		t.Fatalf("game state = %v, want loading", tw.gameState(t).State)
	}

	// Requests during Requested and Loaded leave the target alone.
	later := ecs.NewScheduler(&emitter{events: []any{component.EventStartTransition{From: 2, To: 0}}}, NewTransitionSystem())
	for i := 0; i < 10; i++ {
		later.Update(tw.w)
		if tr.Target != 1 || tr.Last != 0 {
			t.Fatalf("tick %d: target changed to %d from %d", i, tr.Target, tr.Last)
		}
	}
	tr.LevelLoaded()
	later.Update(tw.w)
	if tr.Target != 1 || tr.State != component.TransitionLoaded {
		t.Fatalf("request during loaded changed state: %+v", *tr)
	}
}

func TestTransitionDroppedAfterGameOver(t *testing.T) {
	tw := newTestWorld(t)
	tw.gameState(t).State = component.GameOver
	ecs.NewScheduler(&emitter{events: []any{component.EventStartTransition{From: 0, To: 1}}}, NewTransitionSystem()).Update(tw.w)
	if tr := tw.transition(t); tr.State != component.TransitionIdle {
		t.Fatalf("transition started after game over: %+v", *tr)
	}
	if tw.gameState(t).State != component.GameOver {
		t.Fatal("game over state overwritten")
	}
}

func TestTransitionFadeMonotonic(t *testing.T) {
	tw := newTestWorld(t)
	tr := tw.transition(t)
	tr.Request(0, 1)

	changed := &probe[component.EventLevelChanged]{}
	sched := ecs.NewScheduler(NewTransitionSystem(), changed)

	prev := tr.Alpha
	for i := 0; tr.Alpha < 1; i++ {
		if i > 100 {
			t.Fatal("fade out never completed")
		}
		sched.Update(tw.w)
		if tr.Alpha < prev {
			t.Fatalf("alpha fell from %v to %v while requested", prev, tr.Alpha)
		}
		prev = tr.Alpha
	}
	for i := 0; i < 5; i++ {
		sched.Update(tw.w)
	}
	if len(changed.seen) != 1 || changed.seen[0].Level != 1 {
		t.Fatalf("level changed events = %+v, want one for level 1", changed.seen)
	}
	fade, _ := ecs.Get(tw.w, tw.fade, component.SpriteComponent.Kind())
	if fade.Alpha != 1 {
		t.Fatalf("fade sprite alpha = %v, want 1", fade.Alpha)
	}

	tr.LevelLoaded()
	prev = tr.Alpha
	for i := 0; tr.State != component.TransitionIdle; i++ {
		if i > 100 {
			t.Fatal("fade in never completed")
		}
		sched.Update(tw.w)
		if tr.Alpha > prev {
			t.Fatalf("alpha rose from %v to %v while loaded", prev, tr.Alpha)
		}
		prev = tr.Alpha
	}
	if tr.Alpha != 0 {
		t.Fatalf("idle with alpha %v", tr.Alpha)
	}
}

func TestLevelLoadFailureFadesBackIn(t *testing.T) {
	tw := newTestWorld(t)
	tr := tw.transition(t)
	tr.Request(0, 1)
	tr.Alpha = 1
	tw.gameState(t).State = component.GameLoading

	failing := func(*ecs.World, int) error { return errors.New("boom") }
	ecs.NewScheduler(&emitter{events: []any{component.EventLevelChanged{Level: 1}}}, NewLevelLoadSystem(failing)).Update(tw.w)

	if tr.State != component.TransitionLoaded || tr.Teleport != component.TeleportIdle {
		t.Fatalf("after failed load: %+v", *tr)
	}
	if currentLevel(tw.w) != 0 {
		t.Fatalf("level selection moved to %d", currentLevel(tw.w))
	}
	if tw.gameState(t).State != component.GameInGame {
		t.Fatal("game state not restored")
	}
}

func TestTeleportExact(t *testing.T) {
	tw := newTestWorld(t)
	tw.addGate(t, component.GateEntry, 2, 40, 40)
	want := tw.addGate(t, component.GateEntry, 0, 123.25, 77.5)
	tw.addGate(t, component.GateExit, 0, 10, 10)

	tr := tw.transition(t)
	tr.Request(0, 1)
	tr.LevelLoaded()
	tw.gameState(t).State = component.GameLoading

	NewTeleportSystem(0.25).Update(tw.w)

	gt, _ := ecs.Get(tw.w, want, component.TransformComponent.Kind())
	pt, _ := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	if pt.X != gt.X || pt.Y != gt.Y {
		t.Fatalf("player at (%v,%v), want (%v,%v)", pt.X, pt.Y, gt.X, gt.Y)
	}
	if tr.Teleport != component.TeleportIdle {
		t.Fatal("teleport still pending")
	}
	if tw.gameState(t).State != component.GameInGame {
		t.Fatal("game state not back in game")
	}
	hidden, _ := ecs.Get(tw.w, tw.player, component.HiddenTimerComponent.Kind())
	if hidden.Remaining != 0.25 {
		t.Fatalf("player hidden for %v, want 0.25", hidden.Remaining)
	}
}

func TestTeleportStallsUntilEntryExists(t *testing.T) {
	tw := newTestWorld(t)
	tr := tw.transition(t)
	tr.Request(3, 1)
	tr.LevelLoaded()
	tw.gameState(t).State = component.GameLoading
	tw.addGate(t, component.GateEntry, 0, 5, 5)

	sys := NewTeleportSystem(0)
	for i := 0; i < 3; i++ {
		sys.Update(tw.w)
		if tr.Teleport != component.TeleportPending || tr.TeleportFrom != 3 {
			t.Fatalf("tick %d: teleport left pending: %+v", i, *tr)
		}
		if !tr.StallLogged {
			t.Fatal("stall not recorded")
		}
	}

	tw.addGate(t, component.GateEntry, 3, 64, 32)
	sys.Update(tw.w)
	pt, _ := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	if tr.Teleport != component.TeleportIdle || pt.X != 64 || pt.Y != 32 {
		t.Fatalf("teleport after gate appeared: %+v player=(%v,%v)", *tr, pt.X, pt.Y)
	}
}
