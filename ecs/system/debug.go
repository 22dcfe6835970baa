package system

import (
	"fmt"

	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

// DebugSystem handles the debug keys. It does nothing unless GameState.Debug
// is set.
type DebugSystem struct {
	// forward alternates the End key between 0->1 and 1->0.
	forward bool

	copyText      func(string) error
	clipboardInit bool
	clipboardErr  error
}

func NewDebugSystem() *DebugSystem {
	d := &DebugSystem{forward: true}
	d.copyText = d.writeClipboard
	return d
}

func (d *DebugSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := gameState(w)
	if !ok || !state.Debug {
		return
	}
	_, input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok {
		skip("debug", "input")
		return
	}

	if input.GlobalLightPressed {
		ecs.ForEach(w, component.GlobalLightComponent.Kind(), func(_ ecs.Entity, light *component.GlobalLight) {
			light.On = !light.On
			ecs.Emit(w, component.EventGlobalLightChanged{On: light.On})
			logger.Log.WithFields(logrus.Fields{"daylight": light.On}).Debug("debug global light toggled")
		})
	}

	if input.TransitionPressed {
		evt := component.EventStartTransition{From: 0, To: 1}
		if !d.forward {
			evt = component.EventStartTransition{From: 1, To: 0}
		}
		d.forward = !d.forward
		ecs.Emit(w, evt)
		logger.Log.WithFields(logrus.Fields{"from": evt.From, "to": evt.To}).Debug("debug transition requested")
	}

	if input.CopyCursorPressed {
		_, t, ok := cursorTransform(w)
		if !ok {
			return
		}
		text := fmt.Sprintf("%.0f, %.0f", t.X, t.Y)
		if err := d.copyText(text); err != nil {
			logger.Log.WithError(err).Warn("copy cursor position")
			return
		}
		logger.Log.WithFields(logrus.Fields{"position": text}).Info("cursor position copied")
	}
}

func (d *DebugSystem) writeClipboard(text string) error {
	if !d.clipboardInit {
		d.clipboardInit = true
		d.clipboardErr = clipboard.Init()
	}
	if d.clipboardErr != nil {
		return fmt.Errorf("clipboard: %w", d.clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func cursorTransform(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	cursor, ok := ecs.First(w, component.CursorTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, cursor, component.TransformComponent.Kind())
	return cursor, t, ok
}
