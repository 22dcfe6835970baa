package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	moveX, moveY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveY += 1
	}

	lantern := inpututil.IsKeyJustPressed(ebiten.KeyF)
	advance := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	interact := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	options := inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveY = lx, ly
		}
		lantern = lantern || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		advance = advance || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		options = options || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	cx, cy := ebiten.CursorPosition()

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.LanternPressed = lantern
		input.GlobalLightPressed = inpututil.IsKeyJustPressed(ebiten.KeyG)
		input.TransitionPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnd)
		input.AdvanceTextPressed = advance
		input.InteractPressed = interact
		input.CopyCursorPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
		input.OptionsPressed = options
		input.CursorScreenX = float64(cx)
		input.CursorScreenY = float64(cy)
	})
}
