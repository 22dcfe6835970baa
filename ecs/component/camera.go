package component

import "github.com/milk9111/contour/common"

// Camera looks at world point (X, Y), which is drawn at the screen center.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
	// Smoothness in (0,1]; one snaps to the target every frame.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()

// EffectiveZoom returns Zoom, treating zero as one.
func (c Camera) EffectiveZoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// WorldToScreen maps a world position to logical screen pixels.
func (c Camera) WorldToScreen(x, y float64) (float64, float64) {
	z := c.EffectiveZoom()
	return (x-c.X)*z + common.BaseWidth/2, (y-c.Y)*z + common.BaseHeight/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c Camera) ScreenToWorld(x, y float64) (float64, float64) {
	z := c.EffectiveZoom()
	return (x-common.BaseWidth/2)/z + c.X, (y-common.BaseHeight/2)/z + c.Y
}

// Follow pins the owner's transform to the player. With UseLightDirection the
// offset is the player's LightDirection scaled by Distance.
type Follow struct {
	OffsetX           float64
	OffsetY           float64
	UseLightDirection bool
	Distance          float64
}

var FollowComponent = NewComponent[Follow]()
