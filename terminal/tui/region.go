package tui

import "github.com/lixenwraith/cellsplit/terminal"

// Region is a clipped drawing view onto a Buffer
// Drawing coordinates are relative to the region's origin
type Region struct {
	Buf  *terminal.Buffer
	X, Y int // Absolute position in buffer
	W, H int // Region dimensions
}

// NewRegion creates a region over area, clipped to the buffer bounds
func NewRegion(buf *terminal.Buffer, area Rect) Region {
	clip := area.Intersect(Rect{W: buf.W, H: buf.H})
	return Region{
		Buf: buf,
		X:   clip.X,
		Y:   clip.Y,
		W:   clip.W,
		H:   clip.H,
	}
}

// Rect returns the region's absolute area
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Buf: r.Buf,
		X:   r.X + x,
		Y:   r.Y + y,
		W:   w,
		H:   h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Buf.Set(r.X+x, r.Y+y, terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr})
}

// Rune sets rune, fg and attributes while keeping the cell's existing background
func (r Region) Rune(x, y int, ch rune, fg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	bg := r.Buf.Get(r.X+x, r.Y+y).Bg
	r.Buf.Set(r.X+x, r.Y+y, terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr})
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}
