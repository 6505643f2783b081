package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"driftfield/internal/field"
)

// Virtual pixel size of one terminal cell.
const (
	CellW = 8
	CellH = 16
)

type cell struct {
	ch     rune
	fg, bg field.RGB
	level  float64 // alpha of what was drawn; higher wins
}

// Canvas rasterises field draw calls onto a grid of cells. Each cell covers
// CellW×CellH virtual pixels.
type Canvas struct {
	Cols, Rows int

	bg    field.RGB
	cells []cell
}

func (c *Canvas) Begin(w, h int, _ float64) {
	cols := (w + CellW - 1) / CellW
	rows := (h + CellH - 1) / CellH
	if cols != c.Cols || rows != c.Rows {
		c.Cols, c.Rows = cols, rows
		c.cells = make([]cell, cols*rows)
	}
}

func (c *Canvas) Clear(bg field.RGB) {
	c.bg = bg
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: bg, bg: bg}
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return nil
	}
	return &c.cells[row*c.Cols+col]
}

// plot writes ch if it is at least as strong as what the cell holds.
func (c *Canvas) plot(col, row int, ch rune, col8 field.RGBA) {
	cl := c.at(col, row)
	if cl == nil || col8.A < cl.level {
		return
	}
	cl.ch = ch
	cl.fg = c.bg.Lerp(col8.RGB, col8.A)
	cl.level = col8.A
}

// Glyph picks a dot glyph for a particle radius.
func Glyph(r float64) rune {
	switch {
	case r < 1.2:
		return '·'
	case r < 1.9:
		return '•'
	default:
		return '●'
	}
}

func (c *Canvas) FillCircle(x, y, r float64, col field.RGBA) {
	c.plot(int(x)/CellW, int(y)/CellH, Glyph(r), col)
}

// Line walks the cells between the two points (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1, _ float64, col field.RGBA) {
	cx0, cy0 := int(x0)/CellW, int(y0)/CellH
	cx1, cy1 := int(x1)/CellW, int(y1)/CellH
	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx, sy := 1, 1
	if cx0 > cx1 {
		sx = -1
	}
	if cy0 > cy1 {
		sy = -1
	}
	ch := lineGlyph(x1-x0, y1-y0)
	err := dx + dy
	for {
		c.plot(cx0, cy0, ch, col)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			cx0 += sx
		}
		if e2 <= dx {
			err += dx
			cy0 += sy
		}
	}
}

// lineGlyph follows the segment slope in virtual pixels.
func lineGlyph(dx, dy float64) rune {
	a := math.Atan2(dy, dx)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '─'
	case a < 3*math.Pi/8:
		return '╲'
	case a < 5*math.Pi/8:
		return '│'
	default:
		return '╱'
	}
}

// Card draws a framed box with its title over whatever is underneath.
func (c *Canvas) Card(card *field.Card, w, h float64, pal field.Palette) {
	x, y, cw, ch := card.Rect(w, h)
	c0, r0 := int(math.Round(x/CellW)), int(math.Round(y/CellH))
	c1, r1 := int(math.Round((x+cw)/CellW)), int(math.Round((y+ch)/CellH))
	if c1-c0 < 2 || r1-r0 < 2 {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cl := c.at(col, row)
			if cl == nil {
				continue
			}
			cl.bg = pal.CardFill
			cl.fg = pal.CardEdge
			cl.level = 1
			switch {
			case row == r0 && col == c0:
				cl.ch = '╭'
			case row == r0 && col == c1:
				cl.ch = '╮'
			case row == r1 && col == c0:
				cl.ch = '╰'
			case row == r1 && col == c1:
				cl.ch = '╯'
			case row == r0 || row == r1:
				cl.ch = '─'
			case col == c0 || col == c1:
				cl.ch = '│'
			default:
				cl.ch = ' '
			}
		}
	}
	for i, r := range []rune(card.Title) {
		col := c0 + 2 + i
		if col >= c1-1 {
			break
		}
		if cl := c.at(col, r0+1); cl != nil {
			cl.ch = r
			cl.fg = pal.CardText
		}
	}
}

func (c *Canvas) End() {}

// Rune returns the glyph at a cell, or 0 outside the grid.
func (c *Canvas) Rune(col, row int) rune {
	if cl := c.at(col, row); cl != nil {
		return cl.ch
	}
	return 0
}

// Blit copies the grid to the screen and shows it.
func (c *Canvas) Blit(s tcell.Screen) {
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			cl := &c.cells[row*c.Cols+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cl.fg.R), int32(cl.fg.G), int32(cl.fg.B))).
				Background(tcell.NewRGBColor(int32(cl.bg.R), int32(cl.bg.G), int32(cl.bg.B)))
			s.SetContent(col, row, cl.ch, nil, style)
		}
	}
	s.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
