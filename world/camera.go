package world

import "github.com/milk9111/crossroads/common"

// Camera scrolls the view horizontally to follow a focus point. It only
// moves forward: once the focus crosses the inner right border the view
// advances by the overshoot. Near the end of the level it stops, leaving
// the last border width walkable without scrolling.
type Camera struct {
	sx float64

	viewW  float64
	border float64
	levelW float64
}

func NewCamera(viewW, border, levelW float64) *Camera {
	return &Camera{viewW: viewW, border: border, levelW: levelW}
}

// ScrollX is the world x of the view's left edge.
func (c *Camera) ScrollX() float64 {
	return c.sx
}

func (c *Camera) Left() float64 {
	return c.sx
}

func (c *Camera) Right() float64 {
	return c.sx + c.viewW
}

func (c *Camera) ViewWidth() float64 {
	return c.viewW
}

// InnerRight is the inner border's offset from the view's left edge.
func (c *Camera) InnerRight() float64 {
	return c.viewW - c.border
}

// maxScroll keeps the view inside the level.
func (c *Camera) maxScroll() float64 {
	return max(c.levelW-c.viewW, 0)
}

// GlobalBorderRight is the world x of the inner right border, capped at
// the start of the end-of-level margin.
func (c *Camera) GlobalBorderRight() float64 {
	return min(c.sx+c.InnerRight(), c.levelW-c.border)
}

// Focus advances the view so fx sits on the inner border. It reports
// whether the view moved.
func (c *Camera) Focus(fx float64) bool {
	overshoot := fx - c.GlobalBorderRight()
	if overshoot <= 0 || fx >= c.levelW-c.border {
		return false
	}
	prev := c.sx
	c.sx = common.Clamp(c.sx+overshoot, 0, c.maxScroll())
	return c.sx != prev
}
