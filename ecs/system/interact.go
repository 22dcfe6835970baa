package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

const interactTextSeconds = 4.0

// CursorSystem moves the cursor entity to the mouse position in world space.
type CursorSystem struct{}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{}
}

func (c *CursorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	_, t, ok := cursorTransform(w)
	if !ok {
		return
	}
	cam := activeCamera(w)
	t.X, t.Y = cam.ScreenToWorld(input.CursorScreenX, input.CursorScreenY)
}

// InteractSystem marks interactables under the cursor and shows their text
// on click.
type InteractSystem struct{}

func NewInteractSystem() *InteractSystem {
	return &InteractSystem{}
}

func (i *InteractSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, cursor, ok := cursorTransform(w)
	if !ok {
		return
	}
	clicked := false
	if _, input, ok := ecs.Single(w, component.InputComponent.Kind()); ok {
		clicked = input.InteractPressed
	}

	ecs.ForEach2(w, component.InteractableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, it *component.Interactable, t *component.Transform) {
		it.Hovered = common.Distance(cursor.X, cursor.Y, t.X, t.Y) <= it.Radius
		if !it.Hovered || !clicked || it.Text == "" || !playing(w) {
			return
		}
		ShowText(w, interactTextSeconds, it.Text)
		logger.Log.WithFields(logrus.Fields{"entity": e.String()}).Debug("interacted")
	})
}
