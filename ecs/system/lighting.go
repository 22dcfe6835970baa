package system

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// LightingSystem advances the lighting mode from this tick's trigger events
// and pushes the result to the overlay and the enemies.
type LightingSystem struct{}

func NewLightingSystem() *LightingSystem {
	return &LightingSystem{}
}

func (l *LightingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	lightingEnt, lighting, ok := ecs.Single(w, component.LightingComponent.Kind())
	if !ok {
		skip("lighting", "lighting")
		return
	}
	daylight := false
	if global, ok := ecs.Get(w, lightingEnt, component.GlobalLightComponent.Kind()); ok {
		daylight = global.On
	}

	lanternOn := false
	if player, ok := playerEntity(w); ok {
		if lantern, ok := ecs.Get(w, player, component.LanternComponent.Kind()); ok {
			lanternOn = lantern.On
		}
	}

	prev := lighting.Mode
	globalEvents := ecs.Events[component.EventGlobalLightChanged](w)
	for range globalEvents {
		lighting.Mode = component.NextLightingMode(lighting.Mode, true, false, lanternOn)
	}
	if len(globalEvents) == 0 {
		for range ecs.Events[component.EventLanternToggled](w) {
			lighting.Mode = component.NextLightingMode(lighting.Mode, false, true, lanternOn)
		}
	}
	if lighting.Mode != prev {
		logger.Log.WithFields(logrus.Fields{
			"from": prev.String(),
			"to":   lighting.Mode.String(),
		}).Debug("lighting mode changed")
	}

	frame, visible := component.OverlayFrame(lighting.Mode)
	ecs.ForEach2(w, component.OverlayTagComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.OverlayTag, sprite *component.Sprite) {
		sprite.Frame = frame
		if vis, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok {
			vis.Hidden = !visible
		}
	})

	ecs.ForEach(w, component.EnemyTagComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag) {
		if vis, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok {
			vis.Hidden = daylight
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			anim.Paused = daylight
		}
	})
}
