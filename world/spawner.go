package world

import (
	"math"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/rng"
)

const (
	// off-screen spawn band beyond the visible edges, in pixels.
	edgeNear = 10
	edgeFar  = 50
	// keep walkers and standers away from the very top and bottom pixels.
	topInset    = 10
	bottomInset = 5
	// one in walkerOdds+1 global spawns is a standing NPC.
	walkerOdds = 4
)

// View is the slice of the level the spawner needs to know about.
type View struct {
	Left   float64
	Right  float64
	Height float64
}

// Spawner owns the tick counter and decides what to spawn each frame. It
// never adds entities itself; the world applies capacity and filters.
type Spawner struct {
	src  rng.Source
	cfg  config.SpawnConfig
	tick int
}

func NewSpawner(src rng.Source, cfg config.SpawnConfig) *Spawner {
	return &Spawner{src: src, cfg: cfg}
}

// Tick is the number of frames advanced so far.
func (s *Spawner) Tick() int {
	return s.tick
}

// SetConfig swaps the tuning without resetting the tick.
func (s *Spawner) SetConfig(cfg config.SpawnConfig) {
	s.cfg = cfg
}

// Advance moves one tick forward and returns the NPCs due this tick.
func (s *Spawner) Advance(v View, crossroads []*Crossroad) []*entity.NPC {
	s.tick++

	var out []*entity.NPC
	if s.cfg.Interval > 0 && s.tick%s.cfg.Interval == 0 {
		if s.src.IntRange(0, walkerOdds) < walkerOdds {
			out = append(out, s.walking(v, s.src.IntRange(1, 2)))
		} else {
			out = append(out, s.standing(v, s.src.IntRange(1, 2)))
		}
	}

	right := v.Right + s.cfg.Lookahead
	for _, cr := range crossroads {
		if cr.Visible(v.Left, right) && cr.Due(s.tick) {
			out = append(out, cr.GenerateCrossingEntity(s.src, v.Height, s.cfg.MinSpeed))
		}
	}
	return out
}

// walking places an NPC just outside one of the visible edges.
func (s *Spawner) walking(v View, variant int) *entity.NPC {
	dir := s.src.IntRange(0, 1)*2 - 1
	y := s.src.IntRange(topInset, int(v.Height)-bottomInset)

	var x int
	if dir > 0 {
		left := int(v.Left)
		x = s.src.IntRange(left-edgeFar, left-edgeNear)
	} else {
		right := int(v.Right)
		x = s.src.IntRange(right+edgeNear, right+edgeFar)
	}
	vx := float64(dir) * math.Max(s.cfg.MinSpeed, s.src.Float64())
	return entity.NewNPC(entity.KindWalker, variant, float64(x), float64(y), vx, 0)
}

// standing places a stationary NPC past the right edge in the upper or
// lower third of the level.
func (s *Spawner) standing(v View, variant int) *entity.NPC {
	h := int(v.Height)
	var y int
	if s.src.IntRange(0, 1) == 0 {
		y = s.src.IntRange(topInset, h/3)
	} else {
		y = s.src.IntRange(h/3*2, h-bottomInset)
	}
	right := int(v.Right)
	x := s.src.IntRange(right+edgeNear, right+edgeFar)
	return entity.NewNPC(entity.KindStanding, variant, float64(x), float64(y), 0, 0)
}
