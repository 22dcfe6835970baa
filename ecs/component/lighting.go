package component

// LightingMode is the visibility state of the world.
type LightingMode int

const (
	LightingDark LightingMode = iota
	LightingLantern
	LightingLight
)

func (m LightingMode) String() string {
	switch m {
	case LightingDark:
		return "dark"
	case LightingLantern:
		return "lantern"
	case LightingLight:
		return "light"
	default:
		return "unknown"
	}
}

// Lighting is the singleton lighting state. Exactly one entity carries it.
type Lighting struct {
	Mode LightingMode
}

var LightingComponent = NewComponent[Lighting]()

// GlobalLight is daylight. While On it overrides the lantern, hides enemies
// and stops spawning.
type GlobalLight struct {
	On bool
}

var GlobalLightComponent = NewComponent[GlobalLight]()

// DayNight flips GlobalLight after DaySeconds of daylight or NightSeconds of
// darkness. A zero duration disables the flip out of that phase.
type DayNight struct {
	DaySeconds   float64
	NightSeconds float64
	Elapsed      float64
}

var DayNightComponent = NewComponent[DayNight]()

// NextLightingMode applies one frame of triggers to mode. The global light
// trigger is evaluated first; when it fires the result already reflects
// lanternOn, so the lantern trigger is ignored for that frame. The lantern
// trigger never leaves or enters Light.
func NextLightingMode(mode LightingMode, globalChanged, lanternChanged, lanternOn bool) LightingMode {
	if globalChanged {
		if mode == LightingLight {
			if lanternOn {
				return LightingLantern
			}
			return LightingDark
		}
		return LightingLight
	}
	if lanternChanged {
		switch mode {
		case LightingDark:
			return LightingLantern
		case LightingLantern:
			return LightingDark
		}
	}
	return mode
}

// OverlayFrame returns the darkness overlay frame for mode and whether the
// overlay is drawn at all.
func OverlayFrame(mode LightingMode) (frame int, visible bool) {
	switch mode {
	case LightingDark:
		return 1, true
	case LightingLantern:
		return 0, true
	default:
		return 0, false
	}
}
