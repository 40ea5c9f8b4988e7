package render

import (
	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing target; tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Cell is one terminal cell; Rune 0 marks the trailing half of a wide rune
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a frame composed off-screen and flushed to a Surface in one pass
type Buffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewBuffer creates a buffer with the specified dimensions filled with blank
func NewBuffer(width, height int, blank tcell.Style) *Buffer {
	b := &Buffer{blank: Cell{Rune: ' ', Style: blank}}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at x,y, or the blank cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Fill paints r with spaces in style
func (b *Buffer) Fill(r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.Set(x, y, ' ', style)
		}
	}
}

// Row returns the runes of line y as a string, for tests and debugging
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			out = append(out, c.Rune)
		}
	}
	return string(out)
}

// Flush writes every cell to s; the surface does its own diffing
func (b *Buffer) Flush(s Surface) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
