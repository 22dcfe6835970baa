package component

// MoveDirection is where an entity wants to move this tick. Its length is at
// most one and scales Speed.
type MoveDirection struct {
	X float64
	Y float64
}

var MoveDirectionComponent = NewComponent[MoveDirection]()

type Speed struct {
	Value float64
}

var SpeedComponent = NewComponent[Speed]()

type Lantern struct {
	On bool
}

var LanternComponent = NewComponent[Lantern]()

// LightDirection is the direction the player last moved in. The darkness
// overlay is offset along it.
type LightDirection struct {
	X float64
	Y float64
}

var LightDirectionComponent = NewComponent[LightDirection]()

// HiddenTimer hides the owning entity until it counts down to zero.
type HiddenTimer struct {
	Remaining float64
}

var HiddenTimerComponent = NewComponent[HiddenTimer]()
