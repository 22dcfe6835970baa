package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

// PlayerVisibilitySystem counts down HiddenTimer and hides its owner while
// the timer runs.
type PlayerVisibilitySystem struct{}

func NewPlayerVisibilitySystem() *PlayerVisibilitySystem {
	return &PlayerVisibilitySystem{}
}

func (p *PlayerVisibilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.HiddenTimerComponent.Kind(), component.VisibilityComponent.Kind(), func(_ ecs.Entity, timer *component.HiddenTimer, vis *component.Visibility) {
		if timer.Remaining > 0 {
			timer.Remaining -= common.DeltaSeconds
			if timer.Remaining < 0 {
				timer.Remaining = 0
			}
		}
		vis.Hidden = timer.Remaining > 0
	})
}
