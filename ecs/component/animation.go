package component

// Animation steps Sprite.Frame through FrameCount frames at FPS.
type Animation struct {
	FrameCount int
	FPS        float64
	Timer      float64
	Paused     bool
}

var AnimationComponent = NewComponent[Animation]()
