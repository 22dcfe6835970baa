package system

import (
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
)

// AudioSystem plays queued sound effects and keeps the night music looping
// while it is dark.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, audioComp, ok := ecs.Single(w, component.AudioPlayerComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range ecs.Events[component.EventConfigUpdated](w) {
		audioComp.MusicVolume = evt.Settings.BGMVolume()
		audioComp.SFXVolume = evt.Settings.SFXVolume()
	}

	for _, evt := range ecs.Events[component.EventPlaySound](w) {
		player := audioComp.Players[evt.Name]
		if player == nil {
			logger.Log.WithField("sound", evt.Name).Debug("unknown sound")
			continue
		}
		player.SetVolume(audioComp.SFXVolume)
		if err := player.Rewind(); err != nil {
			logger.Log.WithError(err).WithField("sound", evt.Name).Warn("rewind sound")
			continue
		}
		player.Play()
	}

	music := audioComp.Players[audioComp.MusicTrack]
	if music == nil {
		return
	}
	music.SetVolume(audioComp.MusicVolume)
	night := !globalLightOn(w)
	if state, ok := gameState(w); ok && state.State == component.GameOver {
		night = false
	}
	switch {
	case night && !music.IsPlaying():
		if err := music.Rewind(); err != nil {
			logger.Log.WithError(err).Warn("rewind music")
			return
		}
		music.Play()
	case !night && music.IsPlaying():
		music.Pause()
	}
}
