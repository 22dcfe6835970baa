package system

import (
	"testing"

	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// testWorld holds the singletons most systems expect.
type testWorld struct {
	w        *ecs.World
	lighting ecs.Entity
	player   ecs.Entity
	state    ecs.Entity
	fade     ecs.Entity
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := ecs.NewWorld()
	tw := &testWorld{w: w}

	tw.lighting = ecs.CreateEntity(w)
	mustAdd(t, w, tw.lighting, component.LightingComponent.Kind(), &component.Lighting{Mode: component.LightingDark})
	mustAdd(t, w, tw.lighting, component.GlobalLightComponent.Kind(), &component.GlobalLight{})
	mustAdd(t, w, tw.lighting, component.OverlayTagComponent.Kind(), &component.OverlayTag{})
	mustAdd(t, w, tw.lighting, component.SpriteComponent.Kind(), &component.Sprite{Alpha: 1})
	mustAdd(t, w, tw.lighting, component.VisibilityComponent.Kind(), &component.Visibility{})

	tw.player = ecs.CreateEntity(w)
	mustAdd(t, w, tw.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, tw.player, component.TransformComponent.Kind(), &component.Transform{})
	mustAdd(t, w, tw.player, component.MoveDirectionComponent.Kind(), &component.MoveDirection{})
	mustAdd(t, w, tw.player, component.SpeedComponent.Kind(), &component.Speed{Value: 18})
	mustAdd(t, w, tw.player, component.LanternComponent.Kind(), &component.Lantern{})
	mustAdd(t, w, tw.player, component.LightDirectionComponent.Kind(), &component.LightDirection{X: 1})
	mustAdd(t, w, tw.player, component.HiddenTimerComponent.Kind(), &component.HiddenTimer{})
	mustAdd(t, w, tw.player, component.VisibilityComponent.Kind(), &component.Visibility{})

	tw.state = ecs.CreateEntity(w)
	mustAdd(t, w, tw.state, component.GameStateComponent.Kind(), &component.GameState{State: component.GameInGame})
	mustAdd(t, w, tw.state, component.ScoreComponent.Kind(), &component.Score{})
	mustAdd(t, w, tw.state, component.ScreenTextComponent.Kind(), &component.ScreenText{})
	mustAdd(t, w, tw.state, component.InputComponent.Kind(), &component.Input{})

	tw.fade = ecs.CreateEntity(w)
	mustAdd(t, w, tw.fade, component.FadeTagComponent.Kind(), &component.FadeTag{})
	mustAdd(t, w, tw.fade, component.SpriteComponent.Kind(), &component.Sprite{})
	mustAdd(t, w, tw.fade, component.LevelTransitionComponent.Kind(), &component.LevelTransition{FadeSpeed: component.DefaultFadeSpeed})
	mustAdd(t, w, tw.fade, component.LevelSelectionComponent.Kind(), &component.LevelSelection{})

	return tw
}

func (tw *testWorld) gameState(t *testing.T) *component.GameState {
	t.Helper()
	s, ok := ecs.Get(tw.w, tw.state, component.GameStateComponent.Kind())
	if !ok {
		t.Fatal("missing game state")
	}
	return s
}

func (tw *testWorld) transition(t *testing.T) *component.LevelTransition {
	t.Helper()
	tr, ok := ecs.Get(tw.w, tw.fade, component.LevelTransitionComponent.Kind())
	if !ok {
		t.Fatal("missing level transition")
	}
	return tr
}

func (tw *testWorld) lightingMode(t *testing.T) component.LightingMode {
	t.Helper()
	l, ok := ecs.Get(tw.w, tw.lighting, component.LightingComponent.Kind())
	if !ok {
		t.Fatal("missing lighting")
	}
	return l.Mode
}

func (tw *testWorld) setDaylight(t *testing.T, on bool) {
	t.Helper()
	g, _ := ecs.Get(tw.w, tw.lighting, component.GlobalLightComponent.Kind())
	g.On = on
}

func (tw *testWorld) addEnemy(t *testing.T, x, y float64, count int, active bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, tw.w, e, component.MoveDirectionComponent.Kind(), &component.MoveDirection{})
	mustAdd(t, tw.w, e, component.SpeedComponent.Kind(), &component.Speed{Value: 5})
	mustAdd(t, tw.w, e, component.MergeComponent.Kind(), &component.Merge{Count: count})
	mustAdd(t, tw.w, e, component.DangerousComponent.Kind(), &component.Dangerous{Active: active})
	mustAdd(t, tw.w, e, component.VisibilityComponent.Kind(), &component.Visibility{})
	mustAdd(t, tw.w, e, component.AnimationComponent.Kind(), &component.Animation{FrameCount: 4, FPS: 6})
	mustAdd(t, tw.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodySensor,
		Shape:  component.ColliderCircle,
		Radius: 2.5,
		Moving: true,
	})
	return e
}

func (tw *testWorld) addGate(t *testing.T, kind component.GateKind, level int, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, e, component.GateComponent.Kind(), &component.Gate{Kind: kind, Level: level})
	mustAdd(t, tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, tw.w, e, component.LevelMemberComponent.Kind(), &component.LevelMember{Level: currentLevel(tw.w)})
	mustAdd(t, tw.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodySensor,
		Shape:  component.ColliderRect,
		Width:  16,
		Height: 16,
	})
	return e
}

// emitter is a system that emits fixed events on every tick.
type emitter struct {
	events []any
}

func (e *emitter) Update(w *ecs.World) {
	for _, evt := range e.events {
		ecs.Emit(w, evt)
	}
}

// probe captures events of one type at its position in the schedule.
type probe[T any] struct {
	seen []T
}

func (p *probe[T]) Update(w *ecs.World) {
	p.seen = append(p.seen, ecs.Events[T](w)...)
}
