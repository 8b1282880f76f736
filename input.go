package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	playerStartX  = 40
	stickDeadzone = 0.3
)

// Input reads the keyboard and the first gamepad once per frame and
// exposes the movement axis to the player.
type Input struct {
	moveX, moveY float64
}

func NewInput() *Input {
	return &Input{}
}

// Update polls devices. It returns ebiten.Termination when the quit key
// is pressed.
func (i *Input) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		y++
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		if lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal); lx < -stickDeadzone || lx > stickDeadzone {
			x = lx
		}
		if ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical); ly < -stickDeadzone || ly > stickDeadzone {
			y = ly
		}
	}

	i.moveX, i.moveY = x, y
	return nil
}

func (i *Input) Axis() (float64, float64) {
	return i.moveX, i.moveY
}
