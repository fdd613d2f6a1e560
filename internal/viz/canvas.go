package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravsim/internal/dynamo"
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

// Layer orders what a cell shows when several things land in it. Higher
// layers win the cell's colour.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerField
	LayerTrail
	LayerParticle
	LayerSource
	LayerRepulsive
)

type Canvas struct {
	Width, Height int // in cells
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
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

// Set lights the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels.
func (c *Canvas) Set(x, y int, layer Layer) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if layer > c.Layers[row][col] {
		c.Layers[row][col] = layer
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Layers[i][j] = LayerNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, layer Layer) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawDisc fills a disc of radius r centred on (cx, cy).
func (c *Canvas) DrawDisc(cx, cy, r int, layer Layer) {
	if r <= 0 {
		c.Set(cx, cy, layer)
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.Set(cx+dx, cy+dy, layer)
			}
		}
	}
}

// FillRect fills the w x h rectangle whose top-left corner is (x, y).
func (c *Canvas) FillRect(x, y, w, h int, layer Layer) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.Set(i, j, layer)
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

// Render is String with each run of same-layer cells wrapped in its style.
func (c *Canvas) Render(styles map[Layer]lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		layers := c.Layers[i]
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && layers[j] == layers[start] {
				continue
			}
			run := string(row[start:j])
			if st, ok := styles[layers[start]]; ok && layers[start] != LayerNone {
				run = st.Render(run)
			}
			b.WriteString(run)
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Projection maps world coordinates onto canvas sub-pixels and terminal
// cells back onto world coordinates.
type Projection struct {
	World      dynamo.Bounds
	Cols, Rows int
}

func (p Projection) scale() (float64, float64) {
	return float64(p.Cols*2) / p.World.Width, float64(p.Rows*4) / p.World.Height
}

// ToPixel returns the sub-pixel holding world point v.
func (p Projection) ToPixel(v dynamo.Vec2) (int, int) {
	sx, sy := p.scale()
	return int(math.Floor(v.X * sx)), int(math.Floor(v.Y * sy))
}

// Length converts a world distance along x into sub-pixels.
func (p Projection) Length(d float64) int {
	sx, _ := p.scale()
	return int(math.Round(d * sx))
}

// FromCell returns the world point at the centre of terminal cell (col, row).
func (p Projection) FromCell(col, row int) dynamo.Vec2 {
	return dynamo.Vec2{
		X: (float64(col) + 0.5) * p.World.Width / float64(p.Cols),
		Y: (float64(row) + 0.5) * p.World.Height / float64(p.Rows),
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
