package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/crossroads/common"
)

// DefaultPlayerSpeed is the player's walking speed in pixels per tick.
const DefaultPlayerSpeed = 1.5

// Input reports the desired movement direction, each axis in [-1, 1].
type Input interface {
	Axis() (x, y float64)
}

// Player is the focus entity. The scheduler never removes it.
type Player struct {
	Base
	Speed float64

	input Input
}

func NewPlayer(x, y float64, input Input) *Player {
	return &Player{
		Base:  Base{Pos: cp.Vector{X: x, Y: y}, Kind: KindPlayer, Variant: 1},
		Speed: DefaultPlayerSpeed,
		input: input,
	}
}

// SetInput swaps the input source, e.g. when a front-end is attached.
func (p *Player) SetInput(in Input) {
	p.input = in
}

func (p *Player) Update() {
	if p.input == nil {
		return
	}
	ax, ay := p.input.Axis()
	p.Vel = cp.Vector{X: common.Clamp(ax, -1, 1) * p.Speed, Y: common.Clamp(ay, -1, 1) * p.Speed}
	p.Pos = p.Pos.Add(p.Vel)

	if p.owner == nil {
		return
	}
	w, h := p.owner.PixelSize()
	p.Pos.X = common.Clamp(p.Pos.X, p.owner.ScrollX(), w)
	p.Pos.Y = common.Clamp(p.Pos.Y, 0, h)
}
