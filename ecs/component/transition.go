package component

// TransitionState is the level transition phase.
type TransitionState int

const (
	TransitionIdle TransitionState = iota
	TransitionRequested
	TransitionLoaded
)

func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "idle"
	case TransitionRequested:
		return "requested"
	case TransitionLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// TeleportState is the player placement sub-state that runs while a new
// level is coming in.
type TeleportState int

const (
	TeleportIdle TeleportState = iota
	TeleportPending
)

// DefaultFadeSpeed is the fade alpha change per second.
const DefaultFadeSpeed = 3.0

// LevelTransition is the transition sequencer state. It lives on the fade
// entity and is mutated in place for the whole process lifetime.
type LevelTransition struct {
	State     TransitionState
	Target    int
	Last      int
	Alpha     float64
	FadeSpeed float64

	Teleport     TeleportState
	TeleportFrom int
	// StallLogged is set once a pending teleport has failed to find its
	// Entry gate and the warning was logged.
	StallLogged bool
}

var LevelTransitionComponent = NewComponent[LevelTransition]()

// Request starts a transition from -> to. Only an idle sequencer accepts a
// request; it reports whether the request was taken.
func (t *LevelTransition) Request(from, to int) bool {
	if t.State != TransitionIdle {
		return false
	}
	t.Last = from
	t.Target = to
	t.State = TransitionRequested
	return true
}

// StepFade advances alpha by dt. It reports true on the frame alpha reaches
// full opacity while Requested; the caller emits the level change then.
func (t *LevelTransition) StepFade(dt float64) (covered bool) {
	speed := t.FadeSpeed
	if speed <= 0 {
		speed = DefaultFadeSpeed
	}
	switch t.State {
	case TransitionRequested:
		if t.Alpha >= 1 {
			return false
		}
		t.Alpha += speed * dt
		if t.Alpha >= 1 {
			t.Alpha = 1
			return true
		}
	case TransitionLoaded:
		t.Alpha -= speed * dt
		if t.Alpha <= 0 {
			t.Alpha = 0
			t.State = TransitionIdle
		}
	}
	return false
}

// LevelLoaded moves to the fade-in phase and arms the teleport back to the
// origin gate.
func (t *LevelTransition) LevelLoaded() {
	t.State = TransitionLoaded
	t.Teleport = TeleportPending
	t.TeleportFrom = t.Last
	t.StallLogged = false
}

// LevelSelection is the index of the level whose entities are in the world.
type LevelSelection struct {
	Index int
}

var LevelSelectionComponent = NewComponent[LevelSelection]()
