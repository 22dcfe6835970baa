package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// PlayerControlSystem turns the input state into the player's move direction,
// light direction and lantern flag.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (p *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, input, ok := ecs.Single(w, component.InputComponent.Kind())
	if !ok {
		skip("player_control", "input")
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		skip("player_control", "player")
		return
	}

	dir, ok := ecs.Get(w, player, component.MoveDirectionComponent.Kind())
	if !ok {
		return
	}
	if !playing(w) {
		dir.X, dir.Y = 0, 0
		return
	}

	dir.X, dir.Y = common.Normalize(input.MoveX, input.MoveY)
	if light, ok := ecs.Get(w, player, component.LightDirectionComponent.Kind()); ok && (dir.X != 0 || dir.Y != 0) {
		light.X, light.Y = dir.X, dir.Y
	}

	if !input.LanternPressed {
		return
	}
	lantern, ok := ecs.Get(w, player, component.LanternComponent.Kind())
	if !ok {
		return
	}
	lantern.On = !lantern.On
	ecs.Emit(w, component.EventLanternToggled{On: lantern.On})
	playSound(w, component.SoundLantern)
	logger.Log.WithFields(logrus.Fields{"on": lantern.On}).Debug("lantern toggled")
}
