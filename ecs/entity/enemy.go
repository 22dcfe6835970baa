package entity

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/prefabs"
)

// NewEnemy creates an unarmed enemy at (x, y). It arms itself after
// dangerSeconds.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, x, y, speed, dangerSeconds float64) (ecs.Entity, error) {
	radius := spec.Collider.Radius
	if radius <= 0 {
		radius = 2.5
	}

	b := newBuilder(w, "enemy")
	add(b, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	add(b, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(b, component.MoveDirectionComponent.Kind(), &component.MoveDirection{})
	add(b, component.SpeedComponent.Kind(), &component.Speed{Value: speed})
	add(b, component.MergeComponent.Kind(), &component.Merge{})
	add(b, component.DangerousComponent.Kind(), &component.Dangerous{Timer: dangerSeconds, Active: dangerSeconds <= 0})
	add(b, component.VisibilityComponent.Kind(), &component.Visibility{})
	add(b, component.SpriteComponent.Kind(), spriteFromSpec(spec.Sprite))
	add(b, component.AnimationComponent.Kind(), &component.Animation{FrameCount: spec.Animation.FrameCount, FPS: spec.Animation.FPS})
	add(b, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodySensor,
		Shape:  component.ColliderCircle,
		Radius: radius,
		Moving: true,
	})
	return b.done()
}

func NewSpawner(w *ecs.World, spec prefabs.SpawnerSpec) (ecs.Entity, error) {
	b := newBuilder(w, "spawner")
	add(b, component.EnemySpawnerComponent.Kind(), &component.EnemySpawner{
		BasePeriod:    spec.BasePeriod,
		MinPeriod:     spec.MinPeriod,
		MinDistance:   spec.MinDistance,
		MaxDistance:   spec.MaxDistance,
		SpeedMin:      spec.SpeedMin,
		SpeedMax:      spec.SpeedMax,
		DangerSeconds: spec.DangerSeconds,
	})
	return b.done()
}
