package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

// ScreenTextSystem advances and expires the centered message.
type ScreenTextSystem struct{}

func NewScreenTextSystem() *ScreenTextSystem {
	return &ScreenTextSystem{}
}

func (s *ScreenTextSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, text, ok := ecs.Single(w, component.ScreenTextComponent.Kind())
	if !ok {
		skip("screen_text", "screen_text")
		return
	}
	if state, ok := gameState(w); ok && state.State == component.GameOver {
		return
	}

	advance := false
	if _, input, ok := ecs.Single(w, component.InputComponent.Kind()); ok {
		advance = input.AdvanceTextPressed
	}
	if advance && text.Current() != "" {
		text.Index++
		if text.Index >= len(text.Lines) {
			clearText(text)
		}
		return
	}

	if text.Timer > 0 {
		text.Timer -= common.DeltaSeconds
		if text.Timer <= 0 {
			clearText(text)
		}
	}
}

// ShowText replaces the message with lines, expiring after seconds. Zero
// seconds keeps the text until it is advanced past.
func ShowText(w *ecs.World, seconds float64, lines ...string) {
	ecs.ForEach(w, component.ScreenTextComponent.Kind(), func(_ ecs.Entity, text *component.ScreenText) {
		text.Lines = append([]string(nil), lines...)
		text.Index = 0
		text.Timer = seconds
	})
}

func clearText(text *component.ScreenText) {
	text.Lines = nil
	text.Index = 0
	text.Timer = 0
}
