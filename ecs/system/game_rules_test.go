package system

import (
	"errors"
	"testing"

	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/config"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

func TestPlayerHitEndsRun(t *testing.T) {
	tests := []struct {
		name     string
		active   bool
		wantOver bool
	}{
		{"armed_enemy", true, true},
		{"fresh_enemy", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			enemy := tw.addEnemy(t, 0, 0, 0, tc.active)
			a, b := orderedPair(tw.player, enemy)
			over := &probe[component.EventGameOver]{}
			events := []any{component.EventIntersection{A: uint64(a), B: uint64(b)}}
			ecs.NewScheduler(&emitter{events: events}, NewPlayerHitSystem("GAME OVER"), over).Update(tw.w)

			gotOver := tw.gameState(t).State == component.GameOver
			if gotOver != tc.wantOver || (len(over.seen) == 1) != tc.wantOver {
				t.Fatalf("game over = %v (events %d), want %v", gotOver, len(over.seen), tc.wantOver)
			}
			if tc.wantOver {
				text, _ := ecs.Get(tw.w, tw.state, component.ScreenTextComponent.Kind())
				if text.Current() != "GAME OVER" {
					t.Fatalf("screen text = %q", text.Current())
				}
			}
		})
	}
}

func TestGateIgnoresEntryAndCurrentLevel(t *testing.T) {
	tests := []struct {
		name  string
		kind  component.GateKind
		level int
		want  int
	}{
		{"exit_elsewhere", component.GateExit, 1, 1},
		{"exit_to_current", component.GateExit, 0, 0},
		{"entry", component.GateEntry, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			gate := tw.addGate(t, tc.kind, tc.level, 0, 0)
			a, b := orderedPair(tw.player, gate)
			requests := &probe[component.EventStartTransition]{}
			events := []any{component.EventCollisionStarted{A: uint64(a), B: uint64(b)}}
			ecs.NewScheduler(&emitter{events: events}, NewGateSystem(), requests).Update(tw.w)
			if len(requests.seen) != tc.want {
				t.Fatalf("requests = %+v", requests.seen)
			}
		})
	}
}

func TestScoreRate(t *testing.T) {
	tests := []struct {
		name    string
		lantern bool
		state   component.GameStateKind
		want    float64
	}{
		{"lantern_on", true, component.GameInGame, 1},
		{"lantern_off", false, component.GameInGame, 2},
		{"game_over", false, component.GameOver, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			lantern, _ := ecs.Get(tw.w, tw.player, component.LanternComponent.Kind())
			lantern.On = tc.lantern
			tw.gameState(t).State = tc.state

			sys := NewScoreSystem()
			for i := 0; i < common.TPS; i++ {
				sys.Update(tw.w)
			}
			score, _ := ecs.Get(tw.w, tw.state, component.ScoreComponent.Kind())
			if diff := score.Value - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("score after one second = %v, want %v", score.Value, tc.want)
			}
		})
	}
}

func TestScreenTextAdvanceAndExpire(t *testing.T) {
	tw := newTestWorld(t)
	ShowText(tw.w, 0, "one", "two")
	input, _ := ecs.Get(tw.w, tw.state, component.InputComponent.Kind())
	text, _ := ecs.Get(tw.w, tw.state, component.ScreenTextComponent.Kind())
	sys := NewScreenTextSystem()

	input.AdvanceTextPressed = true
	sys.Update(tw.w)
	if text.Current() != "two" {
		t.Fatalf("after advance: %q", text.Current())
	}
	sys.Update(tw.w)
	if text.Current() != "" {
		t.Fatalf("after last line: %q", text.Current())
	}

	input.AdvanceTextPressed = false
	ShowText(tw.w, 0.5, "timed")
	for i := 0; i < common.TPS; i++ {
		sys.Update(tw.w)
	}
	if text.Current() != "" {
		t.Fatalf("timed text still shown: %q", text.Current())
	}
}

func TestHiddenTimer(t *testing.T) {
	tw := newTestWorld(t)
	hidden, _ := ecs.Get(tw.w, tw.player, component.HiddenTimerComponent.Kind())
	vis, _ := ecs.Get(tw.w, tw.player, component.VisibilityComponent.Kind())
	hidden.Remaining = 0.25

	sys := NewPlayerVisibilitySystem()
	sys.Update(tw.w)
	if !vis.Hidden {
		t.Fatal("player visible right after a level change")
	}
	for i := 0; i < common.TPS/4+1; i++ {
		sys.Update(tw.w)
	}
	if vis.Hidden {
		t.Fatal("player still hidden after the timer")
	}
}

func TestInteractShowsText(t *testing.T) {
	tw := newTestWorld(t)
	cam := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, cam, component.CameraComponent.Kind(), &component.Camera{X: 100, Y: 100, Zoom: 1})
	cursor := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, cursor, component.CursorTagComponent.Kind(), &component.CursorTag{})
	mustAdd(t, tw.w, cursor, component.TransformComponent.Kind(), &component.Transform{})
	sign := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, sign, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: 100})
	mustAdd(t, tw.w, sign, component.InteractableComponent.Kind(), &component.Interactable{Text: "hello", Radius: 8})

	input, _ := ecs.Get(tw.w, tw.state, component.InputComponent.Kind())
	input.CursorScreenX = common.BaseWidth / 2
	input.CursorScreenY = common.BaseHeight / 2
	input.InteractPressed = true

	ecs.NewScheduler(NewCursorSystem(), NewInteractSystem()).Update(tw.w)

	it, _ := ecs.Get(tw.w, sign, component.InteractableComponent.Kind())
	if !it.Hovered {
		t.Fatal("interactable under the cursor not hovered")
	}
	text, _ := ecs.Get(tw.w, tw.state, component.ScreenTextComponent.Kind())
	if text.Current() != "hello" {
		t.Fatalf("screen text = %q", text.Current())
	}
}

func TestSettingsSavedOnUpdate(t *testing.T) {
	tw := newTestWorld(t)
	var saved []config.Settings
	sys := NewSettingsSystem("test.json")
	sys.save = func(path string, s config.Settings) error {
		if path != "test.json" {
			t.Fatalf("saved to %q", path)
		}
		saved = append(saved, s)
		return nil
	}

	sys.Update(tw.w)
	if len(saved) != 0 {
		t.Fatal("saved without an update event")
	}

	s := config.DefaultSettings()
	s.BGM = 150
	ecs.NewScheduler(&emitter{events: []any{component.EventConfigUpdated{Settings: s}}}, sys).Update(tw.w)
	if len(saved) != 1 || saved[0].BGM != 100 {
		t.Fatalf("saved = %+v, want one clamped save", saved)
	}

	sys.save = func(string, config.Settings) error { return errors.New("disk full") }
	ecs.NewScheduler(&emitter{events: []any{component.EventConfigUpdated{Settings: s}}}, sys).Update(tw.w)
}

func TestAnimationStepsAndPauses(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.addEnemy(t, 0, 0, 0, true)
	mustAdd(t, tw.w, e, component.SpriteComponent.Kind(), &component.Sprite{Alpha: 1, FrameW: 16})
	sprite, _ := ecs.Get(tw.w, e, component.SpriteComponent.Kind())
	anim, _ := ecs.Get(tw.w, e, component.AnimationComponent.Kind())

	sys := NewAnimationSystem()
	for i := 0; i < common.TPS; i++ {
		sys.Update(tw.w)
	}
	// Six frames in a second over a four frame strip.
	if sprite.Frame != 2 {
		t.Fatalf("frame = %d, want 2", sprite.Frame)
	}

	anim.Paused = true
	for i := 0; i < common.TPS; i++ {
		sys.Update(tw.w)
	}
	if sprite.Frame != 2 {
		t.Fatalf("paused animation moved to frame %d", sprite.Frame)
	}
}
