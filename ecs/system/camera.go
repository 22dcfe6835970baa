package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

// FollowSystem pins Follow entities to the player.
type FollowSystem struct{}

func NewFollowSystem() *FollowSystem {
	return &FollowSystem{}
}

func (f *FollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, pt, ok := playerTransform(w)
	if !ok {
		return
	}
	lx, ly := 0.0, 0.0
	if light, ok := ecs.Get(w, player, component.LightDirectionComponent.Kind()); ok {
		lx, ly = light.X, light.Y
	}

	ecs.ForEach2(w, component.FollowComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, follow *component.Follow, t *component.Transform) {
		t.X = pt.X + follow.OffsetX
		t.Y = pt.Y + follow.OffsetY
		if follow.UseLightDirection {
			t.X += lx * follow.Distance
			t.Y += ly * follow.Distance
		}
	})
}

// CameraSystem eases the camera toward the player and keeps it inside the
// level bounds.
type CameraSystem struct {
	snap bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{snap: true}
}

// Update moves the camera toward the player position.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, cam, ok := ecs.Single(w, component.CameraComponent.Kind())
	if !ok {
		skip("camera", "camera")
		return
	}
	_, pt, ok := playerTransform(w)
	if !ok {
		return
	}

	tx, ty := pt.X, pt.Y
	if _, bounds, ok := ecs.Single(w, component.LevelBoundsComponent.Kind()); ok {
		tx = clampView(tx, bounds.Width, common.BaseWidth/cam.EffectiveZoom())
		ty = clampView(ty, bounds.Height, common.BaseHeight/cam.EffectiveZoom())
	}

	t := cam.Smoothness
	if t <= 0 || t > 1 || cs.snap {
		t = 1
	}
	cs.snap = false
	cam.X = common.Lerp(cam.X, tx, t)
	cam.Y = common.Lerp(cam.Y, ty, t)
}

// clampView keeps a view of size view centered at v inside [0, size]. A view
// larger than the level is centered on it.
func clampView(v, size, view float64) float64 {
	if size <= view {
		return size / 2
	}
	return common.Clamp(v, view/2, size-view/2)
}

// activeCamera returns the camera or a default one looking at the screen
// center.
func activeCamera(w *ecs.World) component.Camera {
	if _, cam, ok := ecs.Single(w, component.CameraComponent.Kind()); ok {
		return *cam
	}
	return component.Camera{X: common.BaseWidth / 2, Y: common.BaseHeight / 2, Zoom: 1}
}
