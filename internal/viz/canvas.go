// Package viz draws body snapshots onto a Braille pixel canvas for
// terminal rendering. It consumes published snapshots only and never
// mutates them.
package viz

import (
	"math"
	"strings"

	"github.com/san-kum/crittersim/internal/world"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a text grid of Braille cells. Each cell packs 2x4
// sub-pixels, so a WxH canvas addresses (W*2)x(H*4) pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the sub-pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawCircle draws a circle outline at pixel center (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y)
		c.Set(cx+y, cy+x)
		c.Set(cx-y, cy+x)
		c.Set(cx-x, cy+y)
		c.Set(cx-x, cy-y)
		c.Set(cx-y, cy-x)
		c.Set(cx+y, cy-x)
		c.Set(cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// View projects world coordinates onto a canvas.
type View struct {
	canvas *Canvas
	worldW float64
	worldH float64
}

// NewView creates a view of a worldW x worldH viewport rendered into
// cols x rows terminal cells.
func NewView(cols, rows int, worldW, worldH float64) *View {
	return &View{
		canvas: NewCanvas(cols, rows),
		worldW: worldW,
		worldH: worldH,
	}
}

// DrawBodies clears the view and draws every body as a circle whose
// radius follows the body's width and cosmetic scale pulse.
func (v *View) DrawBodies(bodies []world.Body) {
	v.canvas.Clear()

	pxW := float64(v.canvas.Width * 2)
	pxH := float64(v.canvas.Height * 4)

	for i := range bodies {
		b := &bodies[i]
		cx := int(b.Pos.X / v.worldW * pxW)
		cy := int(b.Pos.Y / v.worldH * pxH)
		r := int(math.Round(b.Width / 2 * b.Scale / v.worldW * pxW))
		v.canvas.DrawCircle(cx, cy, r)
	}
}

func (v *View) String() string {
	return v.canvas.String()
}
