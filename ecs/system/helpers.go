package system

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// skip logs a frame skipped for a missing singleton. Debug level only; this
// fires every tick while the world is partially built.
func skip(system, missing string) {
	logger.Log.WithFields(logrus.Fields{
		"system":  system,
		"missing": missing,
	}).Debug("skipping frame")
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

func playerTransform(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	player, ok := playerEntity(w)
	if !ok {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return player, t, true
}

// globalLightOn reports daylight. A world without a lighting entity counts as
// dark.
func globalLightOn(w *ecs.World) bool {
	_, light, ok := ecs.Single(w, component.GlobalLightComponent.Kind())
	return ok && light.On
}

func gameState(w *ecs.World) (*component.GameState, bool) {
	_, state, ok := ecs.Single(w, component.GameStateComponent.Kind())
	return state, ok
}

// playing reports whether gameplay systems should advance this tick.
func playing(w *ecs.World) bool {
	state, ok := gameState(w)
	if !ok {
		return true
	}
	return state.State == component.GameInGame
}

func scoreValue(w *ecs.World) float64 {
	_, score, ok := ecs.Single(w, component.ScoreComponent.Kind())
	if !ok {
		return 0
	}
	return score.Value
}

func currentLevel(w *ecs.World) int {
	_, sel, ok := ecs.Single(w, component.LevelSelectionComponent.Kind())
	if !ok {
		return 0
	}
	return sel.Index
}

func playSound(w *ecs.World, name string) {
	ecs.Emit(w, component.EventPlaySound{Name: name})
}

// orderedPair returns a and b with the lower handle first.
func orderedPair(a, b ecs.Entity) (ecs.Entity, ecs.Entity) {
	if b < a {
		return b, a
	}
	return a, b
}
