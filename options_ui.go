package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/config"
	"golang.org/x/image/font/basicfont"
)

const volumeStep = 10

// NewOptionsUI builds the centered options menu: music and effect volume,
// vsync and fullscreen toggles, resume and quit. Every change goes through
// g.applySettings.
func NewOptionsUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 210})
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func(*widget.Button)) *widget.Button {
		var btn *widget.Button
		btn = widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Left: 8, Right: 8, Top: 2, Bottom: 2}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick(btn)
			}),
		)
		return btn
	}
	row := func(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
		c := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
			widget.ContainerOpts.WidgetOpts(centered),
		)
		for _, child := range children {
			c.AddChild(child)
		}
		return c
	}

	volumeRow := func(name string, get func(config.Settings) float64, set func(*config.Settings, float64)) *widget.Container {
		label := widget.NewText(
			widget.TextOpts.Text(volumeLabel(name, get(g.settings)), &face, white),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 0)),
		)
		change := func(delta float64) func(*widget.Button) {
			return func(*widget.Button) {
				s := g.settings
				set(&s, get(s)+delta)
				g.applySettings(s)
				label.Label = volumeLabel(name, get(g.settings))
			}
		}
		return row(button("-", change(-volumeStep)), label, button("+", change(volumeStep)))
	}

	title := widget.NewText(
		widget.TextOpts.Text("Options", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	music := volumeRow("Music",
		func(s config.Settings) float64 { return s.BGM },
		func(s *config.Settings, v float64) { s.BGM = v })
	effects := volumeRow("Effects",
		func(s config.Settings) float64 { return s.SFX },
		func(s *config.Settings, v float64) { s.SFX = v })
	vsync := button(toggleLabel("VSync", g.settings.VSync), func(b *widget.Button) {
		s := g.settings
		s.VSync = !s.VSync
		g.applySettings(s)
		b.SetText(toggleLabel("VSync", s.VSync))
	})
	fullscreen := button(toggleLabel("Fullscreen", g.settings.Fullscreen), func(b *widget.Button) {
		s := g.settings
		s.Fullscreen = !s.Fullscreen
		g.applySettings(s)
		b.SetText(toggleLabel("Fullscreen", s.Fullscreen))
	})
	resume := button("Resume", func(*widget.Button) { g.optionsOpen = false })
	quit := button("Quit", func(*widget.Button) { g.quit = true })

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(music)
	panel.AddChild(effects)
	panel.AddChild(vsync)
	panel.AddChild(fullscreen)
	panel.AddChild(resume)
	panel.AddChild(quit)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func volumeLabel(name string, v float64) string {
	return fmt.Sprintf("%s %3.0f", name, v)
}

func toggleLabel(name string, on bool) string {
	if on {
		return name + ": on"
	}
	return name + ": off"
}
