package system

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// GateSystem turns the player touching an Exit gate into a transition
// request. Entry gates are arrival points only.
type GateSystem struct{}

func NewGateSystem() *GateSystem {
	return &GateSystem{}
}

func (g *GateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	current := currentLevel(w)

	for _, evt := range ecs.Events[component.EventCollisionStarted](w) {
		a, b := ecs.Entity(evt.A), ecs.Entity(evt.B)
		gateEnt := b
		switch {
		case ecs.Has(w, a, component.PlayerTagComponent.Kind()):
		case ecs.Has(w, b, component.PlayerTagComponent.Kind()):
			gateEnt = a
		default:
			continue
		}

		gate, ok := ecs.Get(w, gateEnt, component.GateComponent.Kind())
		if !ok || gate.Kind != component.GateExit || gate.Level == current {
			continue
		}

		ecs.Emit(w, component.EventStartTransition{From: current, To: gate.Level})
		logger.Log.WithFields(logrus.Fields{
			"gate": gateEnt.String(),
			"from": current,
			"to":   gate.Level,
		}).Debug("exit gate touched")
	}
}
