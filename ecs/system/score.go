package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

// ScoreSystem adds survival time to the score. Walking in the dark with the
// lantern off counts double.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil || !playing(w) {
		return
	}
	_, score, ok := ecs.Single(w, component.ScoreComponent.Kind())
	if !ok {
		skip("score", "score")
		return
	}

	gain := common.DeltaSeconds
	if player, ok := playerEntity(w); ok {
		if lantern, ok := ecs.Get(w, player, component.LanternComponent.Kind()); ok && !lantern.On {
			gain *= 2
		}
	}
	score.Value += gain
}
