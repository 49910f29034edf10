// Package termview grows trees in a terminal. Canvas coordinates are
// mapped onto character cells and segments are drawn with line glyphs.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sapling"
)

// Default canvas units covered by one cell. Terminal cells are roughly
// twice as tall as they are wide.
const (
	DefaultCellWidth  = 6
	DefaultCellHeight = 12
)

// Surface draws segments onto a tcell screen. It implements sapling.Surface.
// Call screen.Show to flush what was drawn.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
}

// NewSurface wraps screen. Zero cell sizes use the defaults.
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Surface{screen: screen, cellW: cellW, cellH: cellH}
}

// CanvasSize returns the canvas bounds covered by the current screen.
func (s *Surface) CanvasSize() (width, height float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// cell maps a canvas point to the cell containing it.
func (s *Surface) cell(p sapling.Point) (int, int) {
	return int(math.Floor(p.X / s.cellW)), int(math.Floor(p.Y / s.cellH))
}

// StrokeLine plots the cells the segment passes through. Cells off screen
// are skipped.
func (s *Surface) StrokeLine(from, to sapling.Point, c sapling.Color) {
	x0, y0 := s.cell(from)
	x1, y1 := s.cell(to)
	ch := glyph(x1-x0, y1-y0)
	st := style(c)
	cols, rows := s.screen.Size()

	// Bresenham over cells.
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < cols && y0 >= 0 && y0 < rows {
			s.screen.SetContent(x0, y0, ch, nil, st)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Clear blanks every cell.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// glyph picks a line character for a segment spanning dx columns and dy
// rows. Rows grow downward.
func glyph(dx, dy int) rune {
	ax, ay := abs(dx), abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return '.'
	case ay*2 < ax:
		return '-'
	case ax*2 < ay:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// style renders c over a black background.
func style(c sapling.Color) tcell.Style {
	a := math.Max(0, math.Min(1, c.A))
	ch := func(v float64) int32 {
		return int32(math.Max(0, math.Min(1, v))*a*255 + 0.5)
	}
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))).
		Background(tcell.ColorBlack)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
