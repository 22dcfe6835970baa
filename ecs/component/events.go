package component

import "github.com/milk9111/contour/config"

// EventGlobalLightChanged is emitted after GlobalLight.On flipped.
type EventGlobalLightChanged struct {
	On bool
}

// EventLanternToggled is emitted after the player's lantern flipped.
type EventLanternToggled struct {
	On bool
}

// EventStartTransition asks the sequencer to move the player between levels.
type EventStartTransition struct {
	From int
	To   int
}

// EventLevelChanged fires once the fade fully covers the screen.
type EventLevelChanged struct {
	Level int
}

// EventCollisionStarted reports a new contact between two physics bodies.
type EventCollisionStarted struct {
	A uint64
	B uint64
}

// EventIntersection reports a sensor overlap that is ongoing this tick. A is
// always the lower entity handle.
type EventIntersection struct {
	A uint64
	B uint64
}

// EventGameOver fires on the tick the player dies.
type EventGameOver struct{}

// EventConfigUpdated carries settings to persist.
type EventConfigUpdated struct {
	Settings config.Settings
}

// EventPlaySound asks the audio system to play a named clip.
type EventPlaySound struct {
	Name string
}
