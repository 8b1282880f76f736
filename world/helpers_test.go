package world

import (
	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/entity"
)

// scriptedSource answers IntRange through a hook and Float64 with a constant.
type scriptedSource struct {
	intFn func(lo, hi int) int
	f     float64
}

func (s *scriptedSource) Float64() float64 { return s.f }

func (s *scriptedSource) IntRange(lo, hi int) int {
	if s.intFn != nil {
		return s.intFn(lo, hi)
	}
	return lo
}

type fakeEngine struct {
	m       TileMap
	sx      float64
	renders int
}

func (e *fakeEngine) ScrollX() float64      { return e.sx }
func (e *fakeEngine) SetScrollX(sx float64) { e.sx = sx }
func (e *fakeEngine) Render()               { e.renders++ }

func fakeFactory(out **fakeEngine) TileEngineFactory {
	return func(m TileMap) (TileEngine, error) {
		e := &fakeEngine{m: m}
		if out != nil {
			*out = e
		}
		return e, nil
	}
}

type fixedInput struct{ x, y float64 }

func (i fixedInput) Axis() (float64, float64) { return i.x, i.y }

type countingPainter struct {
	kinds []entity.Kind
}

func (p *countingPainter) DrawEntity(kind entity.Kind, _ int, _, _ float64) {
	p.kinds = append(p.kinds, kind)
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Level.WidthInTiles = 600
	return cfg
}
