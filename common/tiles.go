package common

// TileSize is the default edge length of a ground tile in pixels.
const TileSize = 9

// Tile codes written into the ground layer. Codes start at the tileset's
// firstgid so 0 stays "no tile".
const (
	TileEmpty  = 0
	TilePath   = 1
	TileBorder = 2
)

// GroundLayer is the name of the only generated tile layer.
const GroundLayer = "ground"
