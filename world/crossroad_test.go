package world

import (
	"fmt"
	"math"
	"testing"

	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/rng"
)

func TestCrossroadVisible(t *testing.T) {
	cr := NewCrossroad(10, 20, 9, 50) // pixels [90, 180)

	cases := []struct {
		name        string
		left, right float64
		want        bool
	}{
		{"inside", 100, 150, true},
		{"covers", 0, 1000, true},
		{"overlaps_start", 0, 91, true},
		{"overlaps_end", 179, 400, true},
		{"touches_start", 0, 90, false},
		{"touches_end", 180, 400, false},
		{"left_of", 0, 50, false},
		{"right_of", 200, 840, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := cr.Visible(c.left, c.right)
			want := c.right > 90 && c.left < 180
			if got != c.want || got != want {
				t.Fatalf("Visible(%v, %v) = %v, want %v", c.left, c.right, got, c.want)
			}
		})
	}
}

func TestCrossroadDue(t *testing.T) {
	cases := []struct {
		cadence, tick int
		want          bool
	}{
		{50, 50, true},
		{50, 100, true},
		{50, 49, false},
		{0, 0, false},
		{-5, 10, false},
	}
	for _, c := range cases {
		cr := NewCrossroad(1, 6, 9, c.cadence)
		if got := cr.Due(c.tick); got != c.want {
			t.Errorf("cadence %d tick %d: Due = %v, want %v", c.cadence, c.tick, got, c.want)
		}
	}
}

func TestGenerateCrossingEntity(t *testing.T) {
	const levelHeight = 360.0
	cr := NewCrossroad(100, 110, 9, 50)

	for seed := 0; seed < 200; seed++ {
		src := rng.New(fmt.Sprintf("crossing-%d", seed))
		n := cr.GenerateCrossingEntity(src, levelHeight, 0.3)

		if n.Kind != entity.KindCrossing {
			t.Fatalf("seed %d: expected crossing kind, got %s", seed, n.Kind)
		}
		pos := n.Position()
		if pos.X < 900+5 || pos.X > 990-5 {
			t.Fatalf("seed %d: x %v outside inset interval", seed, pos.X)
		}
		if n.Vel.X != 0 {
			t.Fatalf("seed %d: crossing NPC should not move horizontally", seed)
		}
		if math.Abs(n.Vel.Y) < 0.3 || math.Abs(n.Vel.Y) >= 1 {
			t.Fatalf("seed %d: speed %v outside [0.3,1)", seed, n.Vel.Y)
		}
		if n.Vel.Y > 0 && (pos.Y < -50 || pos.Y > -10) {
			t.Fatalf("seed %d: downward NPC should start above the level, y=%v", seed, pos.Y)
		}
		if n.Vel.Y < 0 && (pos.Y < levelHeight+10 || pos.Y > levelHeight+50) {
			t.Fatalf("seed %d: upward NPC should start below the level, y=%v", seed, pos.Y)
		}
		if n.Variant < 1 || n.Variant > 2 {
			t.Fatalf("seed %d: variant %d outside [1,2]", seed, n.Variant)
		}
	}
}

func TestGenerateCrossingEntityMinimumSpeed(t *testing.T) {
	cr := NewCrossroad(1, 6, 9, 50)
	src := &scriptedSource{f: 0.01}
	n := cr.GenerateCrossingEntity(src, 360, 0.3)
	if n.Vel.Y != -0.3 {
		t.Fatalf("expected minimum speed -0.3, got %v", n.Vel.Y)
	}
}
