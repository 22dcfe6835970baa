package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor  = color.RGBA{R: 0xe8, G: 0xe2, B: 0xd0, A: 0xff}
	hudPanelColor = color.RGBA{A: 0xa0}
	hoverColor    = color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}
)

// HUDSystem draws the score, the centered message and hover markers.
type HUDSystem struct {
	face *text.GoXFace
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}

	cam := activeCamera(w)
	ecs.ForEach2(w, component.InteractableComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, it *component.Interactable, t *component.Transform) {
		if !it.Hovered {
			return
		}
		x, y := cam.WorldToScreen(t.X, t.Y)
		r := it.Radius * cam.EffectiveZoom()
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, hoverColor, true)
	})

	if _, score, ok := ecs.Single(w, component.ScoreComponent.Kind()); ok {
		h.drawText(screen, fmt.Sprintf("%d", int(score.Value)), 6, 4, text.AlignStart)
	}

	state, hasState := gameState(w)
	if hasState && state.Debug {
		mode := "-"
		if _, lighting, ok := ecs.Single(w, component.LightingComponent.Kind()); ok {
			mode = lighting.Mode.String()
		}
		line := fmt.Sprintf("%s level=%d enemies=%d %s", state.State, currentLevel(w), len(ecs.Query(w, component.EnemyTagComponent.Kind())), mode)
		h.drawText(screen, line, common.BaseWidth-6, 4, text.AlignEnd)
	}

	_, msg, ok := ecs.Single(w, component.ScreenTextComponent.Kind())
	if !ok || msg.Current() == "" {
		return
	}
	line := msg.Current()
	tw, th := text.Measure(line, h.face, 0)
	y := float64(common.BaseHeight) - 40
	if hasState && state.State == component.GameOver {
		y = float64(common.BaseHeight)/2 - th/2
	}
	vector.DrawFilledRect(screen, float32(common.BaseWidth/2-tw/2-6), float32(y-4), float32(tw+12), float32(th+8), hudPanelColor, false)
	h.drawText(screen, line, common.BaseWidth/2, y, text.AlignCenter)
}

func (h *HUDSystem) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudTextColor)
	op.PrimaryAlign = align
	text.Draw(screen, s, h.face, op)
}
