package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

// MovementSystem moves every entity that is not simulated by physics along
// its MoveDirection. Simulated bodies get their velocity in PhysicsSystem.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.MoveDirectionComponent.Kind(), component.SpeedComponent.Kind(), func(e ecs.Entity, t *component.Transform, dir *component.MoveDirection, speed *component.Speed) {
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Kind == component.BodyDynamic && body.Body != nil {
			return
		}
		t.X += dir.X * speed.Value * common.DeltaSeconds
		t.Y += dir.Y * speed.Value * common.DeltaSeconds
	})
}
