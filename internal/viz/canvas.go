package viz

import (
	"math"
	"strings"
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

const blank = 0x2800

// Layer tags which drawing owns a cell, so each can be styled separately.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerBound
	LayerHandle
)

// Canvas is a braille dot grid. Dots are roughly square on common terminal
// fonts: a cell is 2 dots wide and 4 dots tall.
type Canvas struct {
	Width, Height int // cells
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]Layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]Layer, w)
	}
	c.Clear()
	return c
}

// Set sets a dot at (x, y) in dot coordinates and tags its cell.
func (c *Canvas) Set(x, y int, layer Layer) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if layer > c.Layers[row][col] {
		c.Layers[row][col] = layer
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Layers[i][j] = LayerNone
		}
	}
}

// Circle draws the outline of a circle centred on (cx, cy), radius r dots.
func (c *Canvas) Circle(cx, cy, r float64, layer Layer) {
	if r <= 0 {
		c.Set(int(math.Round(cx)), int(math.Round(cy)), layer)
		return
	}
	steps := int(2*math.Pi*r) * 2
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		c.Set(int(math.Round(cx+r*cos)), int(math.Round(cy+r*sin)), layer)
	}
}

// Disc fills a circle centred on (cx, cy), radius r dots.
func (c *Canvas) Disc(cx, cy, r float64, layer Layer) {
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))
	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, layer)
			}
		}
	}
}

// Render joins the grid into lines, passing each run of same-layer cells
// through paint.
func (c *Canvas) Render(paint func(Layer, string) string) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Layers[i][j] == c.Layers[i][start] {
				continue
			}
			b.WriteString(paint(c.Layers[i][start], string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Canvas) String() string {
	return c.Render(func(_ Layer, s string) string { return s })
}
