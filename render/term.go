package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/crossroads/common"
	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/world"
)

var (
	pathStyle   = tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorBlack)
	borderStyle = tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen).Foreground(tcell.ColorGreen)
)

var glyphs = map[entity.Kind][2]rune{
	entity.KindPlayer:   {'@', '@'},
	entity.KindWalker:   {'w', 'W'},
	entity.KindStanding: {'s', 'S'},
	entity.KindCrossing: {'x', 'X'},
}

// Terminal draws one tile per cell. Entity positions are mapped to the
// cell of the tile they stand on.
type Terminal struct {
	screen tcell.Screen
	m      world.TileMap
	ground []int
	sx     float64
	viewW  float64
}

// NewTerminal builds a tile engine for m drawing into screen. viewW is the
// width of the world's view in pixels.
func NewTerminal(screen tcell.Screen, m world.TileMap, viewW float64) (*Terminal, error) {
	if screen == nil {
		return nil, errors.New("render: nil screen")
	}
	ground := m.Layer(common.GroundLayer)
	if len(ground) != m.Width*m.Height || ground == nil {
		return nil, fmt.Errorf("render: ground layer has %d tiles, want %d", len(ground), m.Width*m.Height)
	}
	return &Terminal{screen: screen, m: m, ground: ground, viewW: viewW}, nil
}

// TerminalFactory returns a world.TileEngineFactory drawing into screen.
func TerminalFactory(screen tcell.Screen, viewW float64, out **Terminal) world.TileEngineFactory {
	return func(m world.TileMap) (world.TileEngine, error) {
		t, err := NewTerminal(screen, m, viewW)
		if err != nil {
			return nil, err
		}
		if out != nil {
			*out = t
		}
		return t, nil
	}
}

func (t *Terminal) ScrollX() float64 {
	return t.sx
}

func (t *Terminal) SetScrollX(sx float64) {
	t.sx = sx
}

func (t *Terminal) Render() {
	first, last := visibleColumns(t.sx, t.viewW, t.m.TileWidth, t.m.Width)
	cols, rows := t.screen.Size()

	for y := 0; y < t.m.Height && y < rows; y++ {
		row := y * t.m.Width
		for x := first; x < last && x-first < cols; x++ {
			style := pathStyle
			r := ' '
			if t.ground[row+x] == common.TileBorder {
				style = borderStyle
				r = '▒'
			}
			t.screen.SetContent(x-first, y, r, nil, style)
		}
	}
}

func (t *Terminal) DrawEntity(kind entity.Kind, variant int, x, y float64) {
	if t.m.TileWidth <= 0 || t.m.TileHeight <= 0 || y < 0 {
		return
	}
	// x is relative to the scroll; align it to the first drawn column.
	offset := t.sx - float64(int(t.sx/float64(t.m.TileWidth))*t.m.TileWidth)
	if x+offset < 0 {
		return
	}
	col := int((x + offset) / float64(t.m.TileWidth))
	row := int(y / float64(t.m.TileHeight))
	cols, rows := t.screen.Size()
	if col >= cols || row >= rows || row >= t.m.Height {
		return
	}

	g, ok := glyphs[kind]
	if !ok {
		g = [2]rune{'?', '?'}
	}
	r := g[0]
	if variant > 1 {
		r = g[1]
	}
	_, _, style, _ := t.screen.GetContent(col, row)
	t.screen.SetContent(col, row, r, nil, style.Foreground(tcell.ColorBlack).Bold(kind == entity.KindPlayer))
}
