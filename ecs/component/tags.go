package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// FadeTag marks the full-screen sprite whose alpha follows the level
// transition.
type FadeTag struct{}

var FadeTagComponent = NewComponent[FadeTag]()

// OverlayTag marks the darkness overlay sprite owned by the lighting entity.
type OverlayTag struct{}

var OverlayTagComponent = NewComponent[OverlayTag]()

type CursorTag struct{}

var CursorTagComponent = NewComponent[CursorTag]()
