package world

import "github.com/milk9111/crossroads/entity"

// TileEngine draws the generated tile map with a horizontal scroll.
type TileEngine interface {
	ScrollX() float64
	SetScrollX(sx float64)
	Render()
}

// TileEngineFactory builds the engine for a freshly generated map.
type TileEngineFactory func(m TileMap) (TileEngine, error)

// SpawnFilter may veto a spawn or adjust the NPC before it is added.
type SpawnFilter interface {
	Filter(n *entity.NPC, tick int) bool
}

// SpawnFilterFunc adapts a function to SpawnFilter.
type SpawnFilterFunc func(n *entity.NPC, tick int) bool

func (f SpawnFilterFunc) Filter(n *entity.NPC, tick int) bool {
	return f(n, tick)
}
