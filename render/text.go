package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at x,y clipped to maxWidth columns
// Returns the column after the last cell written
func drawText(buf *Buffer, x, y int, s string, style tcell.Style, maxWidth int) int {
	end := x + maxWidth
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > end {
			break
		}
		buf.Set(x, y, r, style)
		if w == 2 {
			buf.Set(x+1, y, 0, style)
		}
		x += w
	}
	return x
}

// fit truncates s to width columns with an ellipsis, then pads it
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// center returns the x offset that centers s inside width columns
func center(s string, width int) int {
	return max((width-runewidth.StringWidth(s))/2, 0)
}

// wrap breaks s into lines no wider than width, splitting on spaces
// Words longer than width are truncated
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = ww
		case lineWidth+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + ww
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = ww
		}
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// drawBox draws a single-line border around r and clears its interior
func drawBox(buf *Buffer, r Rect, edge, fill tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	buf.Fill(Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, fill)
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		buf.Set(x, r.Y, tcell.RuneHLine, edge)
		buf.Set(x, bottom, tcell.RuneHLine, edge)
	}
	for y := r.Y + 1; y < bottom; y++ {
		buf.Set(r.X, y, tcell.RuneVLine, edge)
		buf.Set(right, y, tcell.RuneVLine, edge)
	}
	buf.Set(r.X, r.Y, tcell.RuneULCorner, edge)
	buf.Set(right, r.Y, tcell.RuneURCorner, edge)
	buf.Set(r.X, bottom, tcell.RuneLLCorner, edge)
	buf.Set(right, bottom, tcell.RuneLRCorner, edge)
}
