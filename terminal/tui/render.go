package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/cellsplit/terminal"
)

// Text renders text at position, truncates at region edge
// Each grapheme cluster occupies its display width, wide clusters leave a continuation cell
// Returns the number of columns written
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, g.Runes()[0], fg, bg, attr)
			for i := 1; i < w; i++ {
				r.Cell(x+col+i, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
	return col
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	x := r.W - DisplayWidth(s)
	return r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	x := (r.W - DisplayWidth(s)) / 2
	return r.Text(x, y, s, fg, bg, attr)
}
