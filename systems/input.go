package systems

import (
	"math"
	"strings"

	"github.com/automoto/kinetic/components"
	"github.com/automoto/kinetic/config/controls"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/shared/gamemath"
	"github.com/automoto/kinetic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input into every player's PlayerInput and pushes a
// movement snapshot for the controller.
// Must run BEFORE UpdateMovement in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		pollDevices(input)

		mv := components.Movement.Get(e)
		if e.HasComponent(components.Death) {
			// frozen bodies see no input, edges resume cleanly after respawn
			mv.Input.Clear()
			return
		}
		mv.Input.Push(Snapshot(input))
	})
}

// pollDevices swaps the frame buffers and reads keyboard, gamepad buttons and
// the left stick.
func pollDevices(input *components.PlayerInputData) {
	input.Previous = input.Current
	input.Current = [controls.ActionCount]bool{}
	input.Stick = gamemath.Vec2{}

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range controls.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if stick, gpID, ok := readLeftStick(gamepadIDs); ok {
		input.Stick = stick
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.InputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.InputMethod = components.InputKeyboard
	}
}

// ActionJustPressed reads a binding straight from the devices. Scenes use it
// while the world is stopped and UpdateInput is not running.
func ActionJustPressed(action controls.ActionID) bool {
	binding := controls.Input.Bindings[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// Snapshot converts the action buffers into the controller's input. Digital
// directions win over the stick on each axis.
func Snapshot(input *components.PlayerInputData) movement.Snapshot {
	move := input.Stick
	if x := digitalAxis(input, controls.ActionMoveLeft, controls.ActionMoveRight); x != 0 {
		move.X = x
	}
	if y := digitalAxis(input, controls.ActionMoveDown, controls.ActionMoveUp); y != 0 {
		move.Y = y
	}

	return movement.Snapshot{
		Move:         move,
		Sprint:       input.Pressed(controls.ActionSprint),
		JumpPressed:  input.JustPressed(controls.ActionJump),
		JumpReleased: input.JustReleased(controls.ActionJump),
		DashPressed:  input.JustPressed(controls.ActionDash),
		SlidePressed: input.JustPressed(controls.ActionSlide),
	}
}

func digitalAxis(input *components.PlayerInputData, negative, positive controls.ActionID) float64 {
	var v float64
	if input.Pressed(negative) {
		v--
	}
	if input.Pressed(positive) {
		v++
	}
	return v
}

// readLeftStick returns the first left stick outside the deadzone, rescaled
// so the deadzone edge maps to zero. Screen-space +y down becomes +y up.
func readLeftStick(gamepads []ebiten.GamepadID) (gamemath.Vec2, ebiten.GamepadID, bool) {
	deadzone := controls.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		stick := gamemath.Vec2{X: applyDeadzone(h, deadzone), Y: -applyDeadzone(v, deadzone)}
		if !stick.IsZero() {
			return stick, gpID, true
		}
	}
	return gamemath.Vec2{}, 0, false
}

func applyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone {
		return 0
	}
	scaled := (math.Abs(v) - deadzone) / (1 - deadzone)
	return gamemath.Sign(v) * math.Min(scaled, 1)
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}
