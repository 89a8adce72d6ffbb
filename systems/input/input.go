package input

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into every player's input.
// It is the input source handed to systems.AddGameplaySystems.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		input.Advance()
		pollKeyboard(input)
		for _, gpID := range gamepadIDs {
			pollGamepad(input, gpID)
		}
	})
}

func pollKeyboard(input *components.PlayerInputData) {
	for actionID, binding := range Controls.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
			}
		}
	}
}

// pollGamepad merges a standard-layout gamepad, including the left stick
// axis, into the input.
func pollGamepad(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, binding := range Controls.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	deadzone := Controls.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone || horizontal > deadzone {
		input.AxisX = horizontal
	}
	if vertical > deadzone {
		input.CurrentInput[cfg.ActionFastFall] = true
	}
}
