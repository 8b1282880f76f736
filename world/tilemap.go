package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/milk9111/crossroads/common"
	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/rng"
	"github.com/milk9111/crossroads/telemetry"
)

// Layer is a named flat tile array, row major.
type Layer struct {
	Name string
	Data []int
}

// TileMap is everything a tile engine needs to draw the level.
type TileMap struct {
	TileWidth  int
	TileHeight int
	// Width and Height are in tiles.
	Width    int
	Height   int
	FirstGID int
	Layers   []Layer
}

// Layer returns the named layer's data, or nil.
func (m TileMap) Layer(name string) []int {
	for _, l := range m.Layers {
		if l.Name == name {
			return l.Data
		}
	}
	return nil
}

// PixelWidth is the map width in pixels.
func (m TileMap) PixelWidth() int {
	return m.Width * m.TileWidth
}

// GenerateCrossroads places one crossroad per full segment of the level.
// Segments too narrow for the minimum width are skipped.
func GenerateCrossroads(src rng.Source, lc config.LevelConfig, cadence int) []*Crossroad {
	span := lc.SegmentSpan
	maxWidth := min(lc.MaxCrossroadWidth, span-2)
	if span <= 0 || maxWidth < lc.MinCrossroadWidth {
		return nil
	}

	segments := lc.WidthInTiles / span
	crossroads := make([]*Crossroad, 0, segments)
	for i := 0; i < segments; i++ {
		width := src.IntRange(lc.MinCrossroadWidth, maxWidth)
		lo := i*span + 1
		hi := (i+1)*span - 1 - width
		start := src.IntRange(lo, hi)
		crossroads = append(crossroads, NewCrossroad(start, start+width, lc.TileSize, cadence))
	}
	return crossroads
}

// GroundTiles lays out the ground layer: border tiles on the outer rows
// except where a crossroad cuts through, path tiles everywhere else.
func GroundTiles(width, height, borderRows int, crossroads []*Crossroad) []int {
	open := make([]bool, width)
	for _, cr := range crossroads {
		for x := max(cr.Start, 0); x < min(cr.End, width); x++ {
			open[x] = true
		}
	}

	tiles := make([]int, 0, width*height)
	for y := 0; y < height; y++ {
		edge := y < borderRows || y >= height-borderRows
		for x := 0; x < width; x++ {
			if edge && !open[x] {
				tiles = append(tiles, common.TileBorder)
			} else {
				tiles = append(tiles, common.TilePath)
			}
		}
	}
	return tiles
}

// GenerateTiles builds the crossroads and the tile map for cfg. The result
// depends only on the draws taken from src.
func GenerateTiles(ctx context.Context, src rng.Source, cfg config.Config) (TileMap, []*Crossroad) {
	_, span := telemetry.Tracer("world").Start(ctx, "level.generate")
	defer span.End()

	lc := cfg.Level
	height := cfg.HeightInTiles()
	crossroads := GenerateCrossroads(src, lc, cfg.Spawn.CrossroadCadence)
	tm := TileMap{
		TileWidth:  lc.TileSize,
		TileHeight: lc.TileSize,
		Width:      lc.WidthInTiles,
		Height:     height,
		FirstGID:   common.TilePath,
		Layers: []Layer{{
			Name: common.GroundLayer,
			Data: GroundTiles(lc.WidthInTiles, height, lc.BorderRows, crossroads),
		}},
	}

	span.SetAttributes(
		attribute.Int("level.width_tiles", tm.Width),
		attribute.Int("level.height_tiles", tm.Height),
		attribute.Int("level.crossroads", len(crossroads)),
	)
	return tm, crossroads
}
