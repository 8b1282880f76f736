package entity

import "github.com/jakecoffman/cp"

const (
	// DespawnMargin is how far behind the left view edge an NPC may fall
	// before it is flagged for deletion.
	DespawnMargin = 200.0
	// AheadMargin bounds how far past the right view edge an NPC may be.
	AheadMargin = 400.0
	// VerticalMargin bounds how far above or below the level an NPC may be.
	VerticalMargin = 100.0
)

// NPC is a background character. Its velocity is fixed at spawn.
type NPC struct {
	Base
}

func NewNPC(kind Kind, variant int, x, y, vx, vy float64) *NPC {
	return &NPC{Base: Base{
		Pos:     cp.Vector{X: x, Y: y},
		Vel:     cp.Vector{X: vx, Y: vy},
		Kind:    kind,
		Variant: variant,
	}}
}

func (n *NPC) Update() {
	if n.deleted {
		return
	}
	n.Pos = n.Pos.Add(n.Vel)
	if n.outOfRange() {
		n.MarkDeleted()
	}
}

func (n *NPC) outOfRange() bool {
	if n.owner == nil {
		return false
	}
	left := n.owner.ScrollX()
	right := left + n.owner.ViewWidth()
	_, h := n.owner.PixelSize()

	switch {
	case n.Pos.X < left-DespawnMargin:
		return true
	case n.Pos.X > right+AheadMargin:
		return true
	case n.Pos.Y < -VerticalMargin || n.Pos.Y > h+VerticalMargin:
		return true
	}
	return false
}
