package component

import "github.com/hajimehoshi/ebiten/v2/audio"

const (
	SoundLantern = "lantern"
	SoundMerge   = "merge"
	SoundGate    = "gate"
	SoundDeath   = "death"
	MusicNight   = "night"
)

// AudioPlayer owns the decoded clips and the looping music track.
type AudioPlayer struct {
	Players     map[string]*audio.Player
	MusicTrack  string
	MusicVolume float64
	SFXVolume   float64
}

var AudioPlayerComponent = NewComponent[AudioPlayer]()
