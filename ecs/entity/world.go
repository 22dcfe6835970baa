package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/contour/assets"
	"github.com/milk9111/contour/config"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/milk9111/contour/prefabs"
	"github.com/sirupsen/logrus"
)

const defaultLightDistance = 10

// NewLighting creates the lighting singleton. The same entity carries the
// darkness overlay that follows the player's light direction.
func NewLighting(w *ecs.World, spec prefabs.LightingSpec, lanternOn bool) (ecs.Entity, error) {
	mode := component.LightingDark
	switch {
	case spec.GlobalLight:
		mode = component.LightingLight
	case lanternOn:
		mode = component.LightingLantern
	}
	frame, visible := component.OverlayFrame(mode)
	distance := spec.LightDistance
	if distance <= 0 {
		distance = defaultLightDistance
	}

	sprite := spriteFromSpec(spec.Overlay)
	sprite.Frame = frame

	b := newBuilder(w, "lighting")
	add(b, component.LightingComponent.Kind(), &component.Lighting{Mode: mode})
	add(b, component.GlobalLightComponent.Kind(), &component.GlobalLight{On: spec.GlobalLight})
	add(b, component.DayNightComponent.Kind(), &component.DayNight{DaySeconds: spec.DaySeconds, NightSeconds: spec.NightSeconds})
	add(b, component.OverlayTagComponent.Kind(), &component.OverlayTag{})
	add(b, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	add(b, component.FollowComponent.Kind(), &component.Follow{UseLightDirection: true, Distance: distance})
	add(b, component.SpriteComponent.Kind(), sprite)
	add(b, component.VisibilityComponent.Kind(), &component.Visibility{Hidden: !visible})
	return b.done()
}

// NewTransition creates the fade entity holding the transition sequencer and
// the selected level.
func NewTransition(w *ecs.World, spec prefabs.TransitionSpec, level int) (ecs.Entity, error) {
	sprite := spriteFromSpec(spec.Sprite)
	sprite.ScreenSpace = true
	sprite.FillScreen = true
	sprite.Alpha = 0

	b := newBuilder(w, "transition")
	add(b, component.FadeTagComponent.Kind(), &component.FadeTag{})
	add(b, component.SpriteComponent.Kind(), sprite)
	add(b, component.LevelTransitionComponent.Kind(), &component.LevelTransition{FadeSpeed: spec.FadeSpeed})
	add(b, component.LevelSelectionComponent.Kind(), &component.LevelSelection{Index: level})
	return b.done()
}

func NewCamera(w *ecs.World, spec prefabs.CameraSpec, x, y float64) (ecs.Entity, error) {
	b := newBuilder(w, "camera")
	add(b, component.CameraTagComponent.Kind(), &component.CameraTag{})
	add(b, component.CameraComponent.Kind(), &component.Camera{X: x, Y: y, Zoom: spec.Zoom, Smoothness: spec.Smoothness})
	add(b, component.FollowComponent.Kind(), &component.Follow{})
	add(b, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	return b.done()
}

func NewCursor(w *ecs.World) (ecs.Entity, error) {
	b := newBuilder(w, "cursor")
	add(b, component.CursorTagComponent.Kind(), &component.CursorTag{})
	add(b, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	add(b, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   loadImage("cursor.png"),
		OriginX: 4,
		OriginY: 4,
		Layer:   30,
		Alpha:   1,
	})
	return b.done()
}

// NewGameState creates the game singletons: state, score, on-screen text and
// the input snapshot. The intro text is shown for spec.IntroSeconds.
func NewGameState(w *ecs.World, spec prefabs.GameSpec, debug bool) (ecs.Entity, error) {
	lines := append([]string(nil), spec.IntroText...)

	b := newBuilder(w, "game")
	add(b, component.GameStateComponent.Kind(), &component.GameState{State: component.GameInGame, Debug: debug})
	add(b, component.ScoreComponent.Kind(), &component.Score{})
	add(b, component.ScreenTextComponent.Kind(), &component.ScreenText{Lines: lines, Timer: spec.IntroSeconds})
	add(b, component.InputComponent.Kind(), &component.Input{})
	return b.done()
}

var soundFiles = map[string]string{
	component.SoundLantern: "lantern.wav",
	component.SoundMerge:   "merge.wav",
	component.SoundGate:    "gate.wav",
	component.SoundDeath:   "death.wav",
}

// NewAudio decodes the sound effects and the music track. A clip that fails
// to decode is logged and left silent.
func NewAudio(w *ecs.World, spec prefabs.GameSpec, settings config.Settings) (ecs.Entity, error) {
	players := make(map[string]*audio.Player, len(soundFiles)+1)
	load := func(name, file string) {
		p, err := assets.LoadAudioPlayer(file)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{"sound": name, "file": file}).WithError(err).Warn("load sound")
			return
		}
		players[name] = p
	}
	for name, file := range soundFiles {
		load(name, file)
	}
	if spec.Music != "" {
		load(component.MusicNight, spec.Music)
	}

	b := newBuilder(w, "audio")
	add(b, component.AudioPlayerComponent.Kind(), &component.AudioPlayer{
		Players:     players,
		MusicTrack:  component.MusicNight,
		MusicVolume: settings.BGMVolume(),
		SFXVolume:   settings.SFXVolume(),
	})
	e, err := b.done()
	if err != nil {
		return 0, fmt.Errorf("audio: %w", err)
	}
	return e, nil
}
