package world

import (
	"testing"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/entity"
)

func spawnHook(global, variant, branch int) func(lo, hi int) int {
	return func(lo, hi int) int {
		switch {
		case lo == 0 && hi == walkerOdds:
			return global
		case lo == 1 && hi == 2:
			return variant
		case lo == 0 && hi == 1:
			return branch
		}
		return lo
	}
}

func advanceTo(s *Spawner, v View, crossroads []*Crossroad, tick int) []*entity.NPC {
	var out []*entity.NPC
	for s.Tick() < tick {
		out = append(out, s.Advance(v, crossroads)...)
	}
	return out
}

func TestSpawnerStationary(t *testing.T) {
	view := View{Left: 0, Right: 640, Height: 360}
	cases := []struct {
		name   string
		branch int
		lo, hi float64
	}{
		{"upper_third", 0, 10, 120},
		{"lower_third", 1, 240, 355},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := &scriptedSource{intFn: spawnHook(walkerOdds, 2, c.branch), f: 0.5}
			s := NewSpawner(src, config.Default().Spawn)

			out := advanceTo(s, view, nil, 10)
			if len(out) != 1 {
				t.Fatalf("expected exactly one spawn, got %d", len(out))
			}
			n := out[0]
			if n.Kind != entity.KindStanding || n.Variant != 2 {
				t.Fatalf("expected standing variant 2, got %s variant %d", n.Kind, n.Variant)
			}
			pos := n.Position()
			if pos.Y < c.lo || pos.Y > c.hi {
				t.Fatalf("y %v outside [%v,%v]", pos.Y, c.lo, c.hi)
			}
			if pos.X < 650 || pos.X > 690 {
				t.Fatalf("x %v not just past the right edge", pos.X)
			}
			if n.Vel.X != 0 || n.Vel.Y != 0 {
				t.Fatalf("standing NPC should not move, vel=%v", n.Vel)
			}
		})
	}
}

func TestSpawnerWalking(t *testing.T) {
	view := View{Left: 1000, Right: 1640, Height: 360}
	cases := []struct {
		name   string
		branch int
		minX   float64
		maxX   float64
		dir    float64
	}{
		{"from_left", 1, 950, 990, 1},
		{"from_right", 0, 1650, 1690, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := &scriptedSource{intFn: spawnHook(0, 1, c.branch), f: 0.1}
			s := NewSpawner(src, config.Default().Spawn)

			out := advanceTo(s, view, nil, 10)
			if len(out) != 1 {
				t.Fatalf("expected one spawn, got %d", len(out))
			}
			n := out[0]
			if n.Kind != entity.KindWalker {
				t.Fatalf("expected walker, got %s", n.Kind)
			}
			if x := n.Position().X; x < c.minX || x > c.maxX {
				t.Fatalf("x %v outside [%v,%v]", x, c.minX, c.maxX)
			}
			if n.Vel.X != c.dir*0.3 {
				t.Fatalf("expected vx %v, got %v", c.dir*0.3, n.Vel.X)
			}
		})
	}
}

func TestSpawnerInterval(t *testing.T) {
	view := View{Left: 0, Right: 640, Height: 360}
	cfg := config.Default().Spawn
	cfg.Interval = 7
	s := NewSpawner(&scriptedSource{f: 0.5}, cfg)

	for tick := 1; tick <= 70; tick++ {
		out := s.Advance(view, nil)
		want := 0
		if tick%7 == 0 {
			want = 1
		}
		if len(out) != want {
			t.Fatalf("tick %d: expected %d spawns, got %d", tick, want, len(out))
		}
	}
	if s.Tick() != 70 {
		t.Fatalf("expected tick 70, got %d", s.Tick())
	}
}

func TestSpawnerCrossroads(t *testing.T) {
	view := View{Left: 0, Right: 640, Height: 360}
	cfg := config.Default().Spawn
	cfg.Interval = 1000

	near := NewCrossroad(80, 90, 9, 5)  // [720, 810): inside the lookahead
	far := NewCrossroad(200, 210, 9, 5) // [1800, 1890): beyond it
	behind := NewCrossroad(0, 10, 9, 7) // [0, 90): on screen, other cadence
	crossroads := []*Crossroad{near, far, behind}

	s := NewSpawner(&scriptedSource{f: 0.5}, cfg)
	for tick := 1; tick <= 35; tick++ {
		out := s.Advance(view, crossroads)
		want := 0
		if tick%5 == 0 {
			want++
		}
		if tick%7 == 0 {
			want++
		}
		if len(out) != want {
			t.Fatalf("tick %d: expected %d crossings, got %d", tick, want, len(out))
		}
		for _, n := range out {
			if n.Kind != entity.KindCrossing {
				t.Fatalf("tick %d: expected crossing NPC, got %s", tick, n.Kind)
			}
			if x := n.Position().X; x >= 1800 {
				t.Fatalf("tick %d: crossing spawned at invisible crossroad x=%v", tick, x)
			}
		}
	}
}

func TestSpawnerSetConfigKeepsTick(t *testing.T) {
	s := NewSpawner(&scriptedSource{}, config.Default().Spawn)
	advanceTo(s, View{Right: 640, Height: 360}, nil, 12)

	cfg := config.Default().Spawn
	cfg.Interval = 13
	s.SetConfig(cfg)
	if out := s.Advance(View{Right: 640, Height: 360}, nil); len(out) != 1 || s.Tick() != 13 {
		t.Fatalf("expected a spawn on tick 13 after retune, got %d at tick %d", len(out), s.Tick())
	}
}
