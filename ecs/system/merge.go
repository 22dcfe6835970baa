package system

import (
	"math"

	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// MergeSystem resolves overlapping armed enemies in the order physics
// reported them. The absorber grows and the other enemy is destroyed.
type MergeSystem struct{}

func NewMergeSystem() *MergeSystem {
	return &MergeSystem{}
}

func (m *MergeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range ecs.Events[component.EventIntersection](w) {
		MergeEnemies(w, ecs.Entity(evt.A), ecs.Entity(evt.B))
	}
}

// MergeEnemies merges a and b when both are live armed enemies and one of
// them may absorb. It returns the destroyed entity, or false when nothing
// happened.
func MergeEnemies(w *ecs.World, a, b ecs.Entity) (ecs.Entity, bool) {
	if !ecs.IsAlive(w, a) || !ecs.IsAlive(w, b) || a == b {
		return 0, false
	}
	ma, okA := ecs.Get(w, a, component.MergeComponent.Kind())
	mb, okB := ecs.Get(w, b, component.MergeComponent.Kind())
	if !okA || !okB || !armed(w, a) || !armed(w, b) {
		return 0, false
	}

	absorber, absorbed := a, b
	switch component.ResolveMerge(*ma, *mb) {
	case component.MergeFirstAbsorbs:
	case component.MergeSecondAbsorbs:
		absorber, absorbed = b, a
	default:
		return 0, false
	}

	absorb(w, absorber, absorbed)
	ecs.DestroyEntity(w, absorbed)
	playSound(w, component.SoundMerge)
	return absorbed, true
}

func armed(w *ecs.World, e ecs.Entity) bool {
	danger, ok := ecs.Get(w, e, component.DangerousComponent.Kind())
	return ok && danger.Active
}

func absorb(w *ecs.World, absorber, absorbed ecs.Entity) {
	merge, _ := ecs.Get(w, absorber, component.MergeComponent.Kind())
	merge.Count++

	if t, ok := ecs.Get(w, absorber, component.TransformComponent.Kind()); ok {
		sx, sy := t.Scale()
		t.ScaleX = sx * component.MergeGrowth
		t.ScaleY = sy * component.MergeGrowth
	}
	if body, ok := ecs.Get(w, absorber, component.PhysicsBodyComponent.Kind()); ok {
		body.Radius *= component.MergeGrowth
	}
	if speed, ok := ecs.Get(w, absorber, component.SpeedComponent.Kind()); ok {
		if other, ok := ecs.Get(w, absorbed, component.SpeedComponent.Kind()); ok {
			speed.Value = math.Max(speed.Value, other.Value)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"absorber": absorber.String(),
		"absorbed": absorbed.String(),
		"count":    merge.Count,
	}).Info("enemies merged")
}
