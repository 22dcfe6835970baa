package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if anim.Paused || anim.FrameCount <= 1 || anim.FPS <= 0 {
			return
		}

		frameTime := 1 / anim.FPS
		anim.Timer += common.DeltaSeconds
		for anim.Timer >= frameTime {
			anim.Timer -= frameTime
			sprite.Frame = (sprite.Frame + 1) % anim.FrameCount
		}
	})
}
