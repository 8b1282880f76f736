package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/crossroads/common"
	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/world"
)

const (
	spriteW = 6
	spriteH = 12
)

var tilePalette = map[int]color.RGBA{
	common.TilePath:   colornames.Burlywood,
	common.TileBorder: colornames.Darkolivegreen,
}

var spritePalette = map[entity.Kind][2]color.RGBA{
	entity.KindPlayer:   {colornames.Crimson, colornames.Crimson},
	entity.KindWalker:   {colornames.Steelblue, colornames.Slategray},
	entity.KindStanding: {colornames.Goldenrod, colornames.Peru},
	entity.KindCrossing: {colornames.Teal, colornames.Darkslateblue},
}

type spriteKey struct {
	kind    entity.Kind
	variant int
}

// Ebiten draws the ground layer and entities into the image passed to
// Begin. The tileset is generated from a fixed palette.
type Ebiten struct {
	m      world.TileMap
	ground []int
	sx     float64

	tiles   map[int]*ebiten.Image
	sprites map[spriteKey]*ebiten.Image
	target  *ebiten.Image
}

// NewEbiten builds a tile engine for m.
func NewEbiten(m world.TileMap) (*Ebiten, error) {
	ground := m.Layer(common.GroundLayer)
	if ground == nil {
		return nil, errors.New("render: map has no ground layer")
	}
	if len(ground) != m.Width*m.Height {
		return nil, fmt.Errorf("render: ground layer has %d tiles, want %d", len(ground), m.Width*m.Height)
	}

	e := &Ebiten{
		m:       m,
		ground:  ground,
		tiles:   make(map[int]*ebiten.Image, len(tilePalette)),
		sprites: make(map[spriteKey]*ebiten.Image),
	}
	for code, c := range tilePalette {
		img := ebiten.NewImage(m.TileWidth, m.TileHeight)
		img.Fill(c)
		e.tiles[code] = img
	}
	return e, nil
}

// EbitenFactory returns a world.TileEngineFactory that stores the created
// engine in out so the game can call Begin on it.
func EbitenFactory(out **Ebiten) world.TileEngineFactory {
	return func(m world.TileMap) (world.TileEngine, error) {
		e, err := NewEbiten(m)
		if err != nil {
			return nil, err
		}
		if out != nil {
			*out = e
		}
		return e, nil
	}
}

func (e *Ebiten) ScrollX() float64 {
	return e.sx
}

func (e *Ebiten) SetScrollX(sx float64) {
	e.sx = sx
}

// Begin sets the image the next Render and DrawEntity calls draw into.
func (e *Ebiten) Begin(screen *ebiten.Image) {
	e.target = screen
}

func (e *Ebiten) Render() {
	if e.target == nil {
		return
	}
	viewW := float64(e.target.Bounds().Dx())
	first, last := visibleColumns(e.sx, viewW, e.m.TileWidth, e.m.Width)

	for y := 0; y < e.m.Height; y++ {
		row := y * e.m.Width
		for x := first; x < last; x++ {
			img := e.tiles[e.ground[row+x]]
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*e.m.TileWidth)-e.sx, float64(y*e.m.TileHeight))
			e.target.DrawImage(img, op)
		}
	}
}

// DrawEntity draws a placeholder sprite with its feet at (x, y).
func (e *Ebiten) DrawEntity(kind entity.Kind, variant int, x, y float64) {
	if e.target == nil {
		return
	}
	img := e.sprite(kind, variant)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-spriteW/2, y-spriteH)
	e.target.DrawImage(img, op)
}

func (e *Ebiten) sprite(kind entity.Kind, variant int) *ebiten.Image {
	key := spriteKey{kind, variant}
	if img, ok := e.sprites[key]; ok {
		return img
	}
	colors, ok := spritePalette[kind]
	if !ok {
		colors = [2]color.RGBA{colornames.Magenta, colornames.Magenta}
	}
	c := colors[0]
	if variant > 1 {
		c = colors[1]
	}
	img := ebiten.NewImage(spriteW, spriteH)
	img.Fill(c)
	e.sprites[key] = img
	return img
}
