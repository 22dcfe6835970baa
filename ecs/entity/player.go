package entity

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/prefabs"
)

// NewPlayer creates the player at (x, y). A positive speed overrides the
// prefab speed.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, x, y, speed float64) (ecs.Entity, error) {
	if speed <= 0 {
		speed = spec.Speed
	}
	radius := spec.Collider.Radius
	if radius <= 0 {
		radius = 2.5
	}

	b := newBuilder(w, "player")
	add(b, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(b, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(b, component.MoveDirectionComponent.Kind(), &component.MoveDirection{})
	add(b, component.SpeedComponent.Kind(), &component.Speed{Value: speed})
	add(b, component.LanternComponent.Kind(), &component.Lantern{On: spec.Lantern})
	add(b, component.LightDirectionComponent.Kind(), &component.LightDirection{X: 0, Y: 1})
	add(b, component.HiddenTimerComponent.Kind(), &component.HiddenTimer{})
	add(b, component.VisibilityComponent.Kind(), &component.Visibility{})
	add(b, component.SpriteComponent.Kind(), spriteFromSpec(spec.Sprite))
	add(b, component.AnimationComponent.Kind(), &component.Animation{FrameCount: spec.Animation.FrameCount, FPS: spec.Animation.FPS})
	add(b, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyDynamic,
		Shape:  component.ColliderCircle,
		Radius: radius,
	})
	return b.done()
}
