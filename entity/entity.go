package entity

import "github.com/jakecoffman/cp"

// Kind distinguishes what an entity is for drawing and despawn rules.
type Kind int

const (
	KindPlayer Kind = iota
	KindWalker
	KindStanding
	KindCrossing
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWalker:
		return "walker"
	case KindStanding:
		return "standing"
	case KindCrossing:
		return "crossing"
	default:
		return "unknown"
	}
}

// Owner is the world an entity lives in. Entities only read from it.
type Owner interface {
	ScrollX() float64
	ViewWidth() float64
	PixelSize() (w, h float64)
}

// Painter draws a single entity at a screen-space position.
type Painter interface {
	DrawEntity(kind Kind, variant int, x, y float64)
}

// Entity is anything the world owns and updates each frame.
type Entity interface {
	Position() cp.Vector
	Deleted() bool
	// Bind attaches the entity to its owner. It succeeds once; later calls
	// with a different owner are refused.
	Bind(o Owner) bool
	Update()
	Render(p Painter)
}

// Base carries the state shared by every entity.
type Base struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Kind    Kind
	Variant int

	deleted bool
	owner   Owner
}

func (b *Base) Position() cp.Vector {
	return b.Pos
}

func (b *Base) Deleted() bool {
	return b.deleted
}

// MarkDeleted flags the entity for removal on the next prune.
func (b *Base) MarkDeleted() {
	b.deleted = true
}

func (b *Base) Bind(o Owner) bool {
	if o == nil {
		return false
	}
	if b.owner != nil {
		return b.owner == o
	}
	b.owner = o
	return true
}

// Owner returns the bound world, or nil before insertion.
func (b *Base) Owner() Owner {
	return b.owner
}

// Render converts the world position to screen space and hands it to p.
func (b *Base) Render(p Painter) {
	if p == nil {
		return
	}
	sx := 0.0
	if b.owner != nil {
		sx = b.owner.ScrollX()
	}
	p.DrawEntity(b.Kind, b.Variant, b.Pos.X-sx, b.Pos.Y)
}
