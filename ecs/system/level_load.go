package system

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// LevelLoader replaces the level entities in w with those of level index.
type LevelLoader func(w *ecs.World, index int) error

// LevelLoadSystem swaps the level while the screen is covered and arms the
// teleport back to the gate the player came through.
type LevelLoadSystem struct {
	load LevelLoader
}

func NewLevelLoadSystem(load LevelLoader) *LevelLoadSystem {
	return &LevelLoadSystem{load: load}
}

func (l *LevelLoadSystem) Update(w *ecs.World) {
	if l == nil || w == nil {
		return
	}
	events := ecs.Events[component.EventLevelChanged](w)
	if len(events) == 0 {
		return
	}

	_, tr, ok := ecs.Single(w, component.LevelTransitionComponent.Kind())
	if !ok {
		skip("level_load", "level_transition")
		return
	}
	_, sel, ok := ecs.Single(w, component.LevelSelectionComponent.Kind())
	if !ok {
		skip("level_load", "level_selection")
		return
	}

	evt := events[len(events)-1]
	if l.load != nil {
		if err := l.load(w, evt.Level); err != nil {
			// Fade back in on the level we never left.
			logger.Log.WithError(err).WithFields(logrus.Fields{"level": evt.Level}).Error("level swap failed")
			tr.State = component.TransitionLoaded
			tr.Teleport = component.TeleportIdle
			if state, ok := gameState(w); ok {
				state.State = component.GameInGame
			}
			return
		}
	}

	sel.Index = evt.Level
	tr.LevelLoaded()
	logger.Log.WithFields(logrus.Fields{
		"level":  evt.Level,
		"origin": tr.TeleportFrom,
	}).Info("level loaded")
}
