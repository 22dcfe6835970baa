package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws one frame of a horizontal strip. FrameW of zero draws the whole
// image.
type Sprite struct {
	Image   *ebiten.Image
	Frame   int
	FrameW  int
	OriginX float64
	OriginY float64
	Layer   int
	Alpha   float64
	Tint    color.Color
	// ScreenSpace sprites ignore the camera.
	ScreenSpace bool
	// FillScreen stretches the image over the whole screen.
	FillScreen bool
}

var SpriteComponent = NewComponent[Sprite]()

// Visibility hides an entity from rendering without removing its sprite.
type Visibility struct {
	Hidden bool
}

var VisibilityComponent = NewComponent[Visibility]()
