package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformdemo/input"
)

var keyBindings = []struct {
	key   ebiten.Key
	input input.Key
}{
	{ebiten.KeyLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeyUp, input.KeyJump},
	{ebiten.KeySpace, input.KeyJump},
	{ebiten.KeyEscape, input.KeyQuit},
}

var gamepadBindings = []struct {
	button ebiten.StandardGamepadButton
	input  input.Key
}{
	{ebiten.StandardGamepadButtonLeftLeft, input.KeyLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.KeyRight},
	{ebiten.StandardGamepadButtonRightBottom, input.KeyJump},
}

// pollKeyboard turns this frame's key transitions into accumulator events,
// the same way an event queue would deliver them.
func pollKeyboard(acc *input.Accumulator) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			acc.Press(b.input)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			acc.Release(b.input)
		}
	}

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	for _, b := range gamepadBindings {
		if inpututil.IsStandardGamepadButtonJustPressed(gid, b.button) {
			acc.Press(b.input)
		}
		if inpututil.IsStandardGamepadButtonJustReleased(gid, b.button) {
			acc.Release(b.input)
		}
	}
}
