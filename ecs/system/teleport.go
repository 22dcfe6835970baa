package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// TeleportSystem places the player on the Entry gate matching the level they
// left. Until such a gate exists the teleport stays pending.
type TeleportSystem struct {
	hideSeconds float64
}

func NewTeleportSystem(hideSeconds float64) *TeleportSystem {
	return &TeleportSystem{hideSeconds: hideSeconds}
}

func (ts *TeleportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, tr, ok := ecs.Single(w, component.LevelTransitionComponent.Kind())
	if !ok {
		skip("teleport", "level_transition")
		return
	}
	if tr.Teleport != component.TeleportPending {
		return
	}

	player, pt, ok := playerTransform(w)
	if !ok {
		skip("teleport", "player")
		return
	}

	gateEnt, gt, found := findEntryGate(w, tr.TeleportFrom)
	if !found {
		if !tr.StallLogged {
			tr.StallLogged = true
			logger.Log.WithFields(logrus.Fields{
				"level":  currentLevel(w),
				"origin": tr.TeleportFrom,
			}).Warn("no entry gate for origin level, teleport pending")
		}
		return
	}

	pt.X, pt.Y = gt.X, gt.Y
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		body.Body.SetPosition(cp.Vector{X: gt.X, Y: gt.Y})
		body.Body.SetVelocity(0, 0)
	}
	if hidden, ok := ecs.Get(w, player, component.HiddenTimerComponent.Kind()); ok {
		hidden.Remaining = ts.hideSeconds
	}

	tr.Teleport = component.TeleportIdle
	if state, ok := gameState(w); ok && state.State == component.GameLoading {
		state.State = component.GameInGame
	}
	logger.Log.WithFields(logrus.Fields{
		"gate":   gateEnt.String(),
		"origin": tr.TeleportFrom,
		"x":      gt.X,
		"y":      gt.Y,
	}).Info("player teleported")
}

func findEntryGate(w *ecs.World, origin int) (ecs.Entity, *component.Transform, bool) {
	for _, e := range ecs.Query(w, component.GateComponent.Kind()) {
		gate, ok := ecs.Get(w, e, component.GateComponent.Kind())
		if !ok || gate.Kind != component.GateEntry || gate.Level != origin {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		return e, t, true
	}
	return 0, nil, false
}
