package component

// LevelMember marks entities that belong to the loaded level and are
// despawned when the level is swapped.
type LevelMember struct {
	Level int
}

var LevelMemberComponent = NewComponent[LevelMember]()

// Wall is solid level geometry drawn as a filled rectangle.
type Wall struct {
	Width  float64
	Height float64
}

var WallComponent = NewComponent[Wall]()

// LevelBounds is the pixel size of the loaded level.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
