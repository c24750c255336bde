package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs/component"
)

const stickDeadzone = 0.2

// readInput decodes keyboard, mouse and the first gamepad into player
// intent. playerPos converts the cursor into an aim direction.
func readInput(playerPos cp.Vector) component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Move.Y += 1
	}

	mx, my := ebiten.CursorPosition()
	in.Aim = cp.Vector{X: float64(mx), Y: float64(my)}.Sub(playerPos)

	in.Attack = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Block = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Throw = inpututil.IsKeyJustPressed(ebiten.KeyE)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.Move = cp.Vector{X: lx, Y: ly}
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.Aim = cp.Vector{X: rx, Y: ry}
		}

		in.Attack = in.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Dash = in.Dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Throw = in.Throw || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.Block = in.Block || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}

	// Normalize diagonal keyboard movement.
	if l := in.Move.Length(); l > 1 {
		in.Move = in.Move.Mult(1 / l)
	}
	return in
}
