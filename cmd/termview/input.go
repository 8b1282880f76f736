package main

import "github.com/gdamore/tcell/v2"

// holdFrames is how long a key press keeps moving the player. Terminals
// report key presses and repeats but never releases.
const holdFrames = 8

// KeyInput turns terminal key presses into a movement axis.
type KeyInput struct {
	x, y       float64
	xTTL, yTTL int
}

func NewKeyInput() *KeyInput {
	return &KeyInput{}
}

// HandleKey records a key press. It returns false when the key asks to quit.
func (k *KeyInput) HandleKey(ev *tcell.EventKey) bool {
	return k.handle(ev.Key(), ev.Rune())
}

func (k *KeyInput) handle(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		k.press(-1, 0)
	case tcell.KeyRight:
		k.press(1, 0)
	case tcell.KeyUp:
		k.press(0, -1)
	case tcell.KeyDown:
		k.press(0, 1)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case 'a', 'h':
			k.press(-1, 0)
		case 'd', 'l':
			k.press(1, 0)
		case 'w', 'k':
			k.press(0, -1)
		case 's', 'j':
			k.press(0, 1)
		}
	}
	return true
}

func (k *KeyInput) press(dx, dy float64) {
	if dx != 0 {
		k.x, k.xTTL = dx, holdFrames
	}
	if dy != 0 {
		k.y, k.yTTL = dy, holdFrames
	}
}

// Update ages held directions by one frame.
func (k *KeyInput) Update() {
	if k.xTTL > 0 {
		k.xTTL--
	}
	if k.yTTL > 0 {
		k.yTTL--
	}
}

func (k *KeyInput) Axis() (float64, float64) {
	var x, y float64
	if k.xTTL > 0 {
		x = k.x
	}
	if k.yTTL > 0 {
		y = k.y
	}
	return x, y
}
