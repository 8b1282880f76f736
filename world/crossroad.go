package world

import (
	"math"

	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/rng"
)

const (
	// crossingInset keeps crossing NPCs off the edge tiles of a crossroad.
	crossingInset = 5
	// crossing NPCs enter between these distances outside the level.
	crossingNear = 10
	crossingFar  = 50
)

// Crossroad is a tile interval [Start, End) where NPCs cross the level
// vertically every Cadence ticks.
type Crossroad struct {
	Start    int
	End      int
	TileSize int
	Cadence  int
}

func NewCrossroad(start, end, tileSize, cadence int) *Crossroad {
	return &Crossroad{Start: start, End: end, TileSize: tileSize, Cadence: cadence}
}

// Width is the crossroad width in tiles.
func (c *Crossroad) Width() int {
	return c.End - c.Start
}

// Contains reports whether tile column x lies inside the crossroad.
func (c *Crossroad) Contains(x int) bool {
	return x >= c.Start && x < c.End
}

// Visible reports whether the crossroad's pixel span overlaps [left, right].
func (c *Crossroad) Visible(left, right float64) bool {
	return right > float64(c.Start*c.TileSize) && left < float64(c.End*c.TileSize)
}

// Due reports whether the crossroad spawns on this tick.
func (c *Crossroad) Due(tick int) bool {
	return c.Cadence > 0 && tick%c.Cadence == 0
}

// GenerateCrossingEntity builds an NPC that walks straight across the
// crossroad, entering from above or below the level.
func (c *Crossroad) GenerateCrossingEntity(src rng.Source, levelHeight, minSpeed float64) *entity.NPC {
	dir := src.IntRange(0, 1)*2 - 1
	x := src.IntRange(c.Start*c.TileSize+crossingInset, c.End*c.TileSize-crossingInset)

	h := int(levelHeight)
	var y int
	if dir > 0 {
		y = src.IntRange(-crossingFar, -crossingNear)
	} else {
		y = src.IntRange(h+crossingNear, h+crossingFar)
	}
	variant := src.IntRange(1, 2)
	vy := float64(dir) * math.Max(minSpeed, src.Float64())

	return entity.NewNPC(entity.KindCrossing, variant, float64(x), float64(y), 0, vy)
}
