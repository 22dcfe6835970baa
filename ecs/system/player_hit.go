package system

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// PlayerHitSystem ends the run when an armed enemy touches the player.
type PlayerHitSystem struct {
	gameOverText string
}

func NewPlayerHitSystem(gameOverText string) *PlayerHitSystem {
	if gameOverText == "" {
		gameOverText = "GAME OVER"
	}
	return &PlayerHitSystem{gameOverText: gameOverText}
}

func (p *PlayerHitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := gameState(w)
	if !ok {
		skip("player_hit", "game_state")
		return
	}
	if state.State != component.GameInGame {
		return
	}

	for _, evt := range ecs.Events[component.EventIntersection](w) {
		a, b := ecs.Entity(evt.A), ecs.Entity(evt.B)
		enemy := b
		switch {
		case ecs.Has(w, a, component.PlayerTagComponent.Kind()):
		case ecs.Has(w, b, component.PlayerTagComponent.Kind()):
			enemy = a
		default:
			continue
		}
		if !ecs.IsAlive(w, enemy) || !ecs.Has(w, enemy, component.EnemyTagComponent.Kind()) || !armed(w, enemy) {
			continue
		}

		state.State = component.GameOver
		ecs.ForEach(w, component.ScreenTextComponent.Kind(), func(_ ecs.Entity, text *component.ScreenText) {
			text.Lines = []string{p.gameOverText}
			text.Index = 0
			text.Timer = 0
		})
		ecs.Emit(w, component.EventGameOver{})
		playSound(w, component.SoundDeath)
		logger.Log.WithFields(logrus.Fields{
			"enemy": enemy.String(),
			"score": scoreValue(w),
		}).Info("player caught")
		return
	}
}
