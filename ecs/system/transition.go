package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// TransitionSystem owns the fade. It accepts one transition at a time, fades
// the screen out, announces the level change and fades back in once the new
// level is loaded.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem { return &TransitionSystem{} }

func (ts *TransitionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, tr, ok := ecs.Single(w, component.LevelTransitionComponent.Kind())
	if !ok {
		skip("transition", "level_transition")
		return
	}

	for _, req := range ecs.Events[component.EventStartTransition](w) {
		fields := logrus.Fields{"from": req.From, "to": req.To, "state": tr.State.String()}
		if state, ok := gameState(w); ok && state.State == component.GameOver {
			logger.Log.WithFields(fields).Debug("transition dropped after game over")
			continue
		}
		if !tr.Request(req.From, req.To) {
			logger.Log.WithFields(fields).Debug("transition dropped, one already in flight")
			continue
		}
		if state, ok := gameState(w); ok {
			state.State = component.GameLoading
		}
		playSound(w, component.SoundGate)
		logger.Log.WithFields(fields).Info("level transition started")
	}

	if tr.StepFade(common.DeltaSeconds) {
		ecs.Emit(w, component.EventLevelChanged{Level: tr.Target})
		logger.Log.WithFields(logrus.Fields{"level": tr.Target}).Debug("fade covered screen")
	}

	ecs.ForEach2(w, component.FadeTagComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, _ *component.FadeTag, sprite *component.Sprite) {
		sprite.Alpha = tr.Alpha
	})
}
